package help

import (
	"context"

	"slashbot/internal/commands/types"
	"slashbot/internal/config"

	"github.com/bwmarrin/discordgo"
)

// HelpModule implements the CommandModule interface for the help command
type HelpModule struct {
	config *config.Config
}

// New creates a new help module
func New(deps *types.Dependencies) *HelpModule {
	return &HelpModule{config: deps.Config}
}

// Register adds the help command to the command map
func (m *HelpModule) Register(cmds map[string]*types.Command, deps *types.Dependencies) {
	cmds["help"] = &types.Command{
		ApplicationCommand: &discordgo.ApplicationCommand{
			Name:        "help",
			Description: "Displays all commands available to you!",
		},
		HandlerFunc: m.handleHelp,
		Ephemeral:   true,
	}
}

// handleHelp lists every registered command, visible only to the caller
func (m *HelpModule) handleHelp(ctx context.Context, inv *types.Invocation) error {
	cmds := inv.Registry.Commands()

	embeds, dropped := helpEmbeds(cmds, inv.Invoker())
	if dropped > 0 {
		m.config.Logger.Warnf("Help reply is full, %d of %d commands left out", dropped, len(cmds))
	}

	return inv.Respond(ctx, &discordgo.InteractionResponseData{
		Embeds: embeds,
	})
}
