package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardgamego/cardlist/internal/deck"
	"github.com/cardgamego/cardlist/internal/listfile"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the card list with custom output, folder or format",
	Long: `Generate writes the card front list like the bare command, but reads settings
from the config file (XDG_CONFIG_HOME/cardlist/config.toml, or --config) and lets
flags override them.

Examples:
  cardlist generate -o fronts.txt
  cardlist generate --folder images/fronts --format yaml -o fronts.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config file first, then flags
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		format, err := listfile.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}

		if err := generate(cmd, cfg.Output, deck.New(cfg.Folder), format); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote card list to %s\n", cfg.Output)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output", "o", listfile.DefaultOutput, "File to write")
	generateCmd.Flags().String("folder", deck.DefaultFolder, "Folder prefix of every image path")
	generateCmd.Flags().StringP("format", "f", string(listfile.FormatList), "Output format: list or yaml")
	generateCmd.Flags().StringP("config", "c", "", "Config file to read instead of the default one")
}
