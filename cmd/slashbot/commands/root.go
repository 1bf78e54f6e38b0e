package commands

import (
	"fmt"

	"slashbot/internal/config"

	"github.com/spf13/cobra"
)

var (
	logLevelOverride string
	loadedConfig     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "slashbot",
		Short:         "slashbot - Discord slash command bot",
		Long:          `slashbot answers the /help and /ping slash commands on Discord.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if logLevelOverride != "" {
				if err := cfg.SetLogLevel(logLevelOverride); err != nil {
					return err
				}
			}
			loadedConfig = cfg
			return nil
		},
		RunE: runBot,
	}

	cmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "", "Override log level (debug|info|warn|error)")

	cmd.AddCommand(
		NewRunCmd(),
		NewCommandsCmd(),
	)

	return cmd
}
