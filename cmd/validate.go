package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cardgamego/cardlist/internal/ctxlog"
	"github.com/cardgamego/cardlist/internal/deck"
	"github.com/cardgamego/cardlist/internal/listfile"
	"github.com/cardgamego/cardlist/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card list file",
	Long: `Validate checks that a card list file (output.txt by default) holds exactly one
well-formed entry per card, in suit-major order, with no unknown suit or rank symbols.
With --assets (or assets_root in the config file), it also checks that every listed image exists under that directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listPath := listfile.DefaultOutput
		if len(args) == 1 {
			listPath = args[0]
		}

		// Folder and assets root come from the config unless given as flags
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		ctxlog.FromContext(cmd.Context()).Debug("validating card list",
			"path", listPath, "folder", cfg.Folder, "assets", cfg.AssetsRoot)

		// Create validator and run validation
		v := validator.NewValidator(listPath, deck.New(cfg.Folder))
		v.AssetsRoot = cfg.AssetsRoot
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		// Display validation results
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintln(out, color.GreenString("✅ Card list '%s' is valid.", listPath))
		} else {
			fmt.Fprintln(out, color.RedString("❌ Card list '%s' has %d validation errors:", listPath, len(results.Errors)))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, color.YellowString("\nWarnings:"))
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("folder", deck.DefaultFolder, "Folder prefix expected on every image path")
	validateCmd.Flags().StringP("assets", "a", "", "Directory the image paths are relative to; reports missing images")
	validateCmd.Flags().StringP("config", "c", "", "Config file to read instead of the default one")
}
