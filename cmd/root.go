package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cardgamego/cardlist/internal/config"
	"github.com/cardgamego/cardlist/internal/ctxlog"
	"github.com/cardgamego/cardlist/internal/deck"
	"github.com/cardgamego/cardlist/internal/listfile"
)

// RootCmd represents the base command when called without any subcommands.
// Run bare, it writes the fixed card front list to output.txt.
var RootCmd = &cobra.Command{
	Use:   "cardlist",
	Short: "Generate the list of card front image paths",
	Long: `Cardlist writes the image paths of all 52 card fronts to output.txt, one
quoted, comma-terminated entry per line, ready to paste into the game's image table.

Cards are listed suit by suit (c, h, d, s), ranks 1-9, X, J, Q, K within each suit:

  "assets/images/cards/fronts/c1.png",
  ...
  "assets/images/cards/fronts/sK.png",`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := ctxlog.New(cmd.ErrOrStderr(), verbose)
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd, listfile.DefaultOutput, deck.Default(), listfile.FormatList)
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// generate writes the list for d to output.
func generate(cmd *cobra.Command, output string, d *deck.Deck, format listfile.Format) error {
	logger := ctxlog.FromContext(cmd.Context())
	logger.Debug("writing card list",
		"output", output, "folder", d.Folder, "format", string(format), "cards", len(d.Cards))

	// Create the list file and write every card
	if err := listfile.Generate(output, d, format); err != nil {
		return err
	}

	logger.Debug("card list written", "output", output)
	return nil
}

// loadSettings reads the config file (--config when cmd has it, otherwise the
// default location) and applies every setting flag explicitly set on cmd.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	logger := ctxlog.FromContext(cmd.Context())

	var cfg *config.Config
	var err error
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		logger.Debug("loading config", "path", path)
		cfg, err = config.LoadFile(path)
	} else {
		logger.Debug("loading config", "path", config.GetConfigFilePath())
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	override := func(name string, dst *string) {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	override("output", &cfg.Output)
	override("folder", &cfg.Folder)
	override("format", &cfg.Format)
	override("assets", &cfg.AssetsRoot)
	return cfg, nil
}
