package commands

import (
	"fmt"

	"slashbot/internal/bot"

	"github.com/spf13/cobra"
)

func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and serve slash commands",
		RunE:  runBot,
	}
}

func runBot(cmd *cobra.Command, args []string) error {
	if err := loadedConfig.Validate(); err != nil {
		return err
	}

	b, err := bot.New(loadedConfig)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	if err := b.Start(); err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}
	return nil
}
