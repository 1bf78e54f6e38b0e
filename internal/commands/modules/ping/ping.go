package ping

import (
	"context"
	"fmt"

	"slashbot/internal/commands/types"
	"slashbot/internal/metrics"

	"github.com/bwmarrin/discordgo"
)

// unavailableLatency is reported before the first heartbeat round trip completes
const unavailableLatency int64 = -1

// PingModule implements the CommandModule interface for the ping command
type PingModule struct{}

// New creates a new ping module
func New(deps *types.Dependencies) *PingModule {
	return &PingModule{}
}

// Register adds the ping command to the command map
func (m *PingModule) Register(cmds map[string]*types.Command, deps *types.Dependencies) {
	cmds["ping"] = &types.Command{
		ApplicationCommand: &discordgo.ApplicationCommand{
			Name:        "ping",
			Description: "Replies with Pong(ms)!",
		},
		HandlerFunc: m.handlePing,
	}
}

// handlePing answers publicly with the gateway heartbeat latency
func (m *PingModule) handlePing(ctx context.Context, inv *types.Invocation) error {
	return inv.Respond(ctx, &discordgo.InteractionResponseData{
		Content: pongMessage(inv.Latency),
	})
}

func pongMessage(src types.LatencySource) string {
	ms := unavailableLatency
	if src != nil {
		if d, ok := src.Latency(); ok {
			ms = d.Milliseconds()
			metrics.GatewayLatency.Set(float64(ms))
		}
	}
	return fmt.Sprintf("Pong! %dms", ms)
}
