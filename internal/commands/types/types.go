package types

import (
	"context"
	"time"

	"slashbot/internal/config"

	"github.com/bwmarrin/discordgo"
)

// Command represents a Discord application command with its handler
type Command struct {
	ApplicationCommand *discordgo.ApplicationCommand
	HandlerFunc        func(ctx context.Context, inv *Invocation) error
	// Ephemeral marks every reply of this command as visible only to the invoker
	Ephemeral bool
}

// Name returns the registered name of the command
func (c *Command) Name() string {
	return c.ApplicationCommand.Name
}

// Description returns the registered description of the command
func (c *Command) Description() string {
	return c.ApplicationCommand.Description
}

// Registry yields every registered command. Order is not significant.
type Registry interface {
	Commands() []*Command
}

// ReplyChannel delivers the single response of one interaction
type ReplyChannel interface {
	Respond(ctx context.Context, resp *discordgo.InteractionResponse) error
}

// LatencySource exposes the gateway heartbeat round trip.
// ok is false until a heartbeat has been acknowledged.
type LatencySource interface {
	Latency() (d time.Duration, ok bool)
}

// CommandModule represents a module that can register commands
// Each module should contain:
// - Command definition(s)
// - Handler function(s)
type CommandModule interface {
	// Register adds the module's commands to the provided map
	Register(commands map[string]*Command, deps *Dependencies)
}

// Dependencies contains shared dependencies that command modules may need
type Dependencies struct {
	Config *config.Config
}
