package cmd

import (
	"log/slog"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	logger = slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "A single-table blackjack dealer for the terminal",
	Long: `Blackjack deals a shuffled 52-card deck to a single player at the terminal.
It validates every bet against the player's balance and shows the value
of each hand dealt. Table settings live in a TOML config file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configPath != "" {
			config.SetConfigFilePath(configPath)
		}
		if verbose {
			pterm.DefaultLogger.Level = pterm.LogLevelDebug
		}
		logger.Debug("using config", "path", config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the table config file")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
