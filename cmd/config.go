package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardgamego/cardlist/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the cardlist config file",
	Long:  `Commands for managing the config file read by 'cardlist generate'.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file if it does not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Write the default config unless one exists
		configPath, err := config.Init()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
