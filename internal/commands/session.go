package commands

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
)

// CommandSession is the part of *discordgo.Session used to manage application commands
type CommandSession interface {
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandEdit(appID, guildID, cmdID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

// interactionResponder is the part of *discordgo.Session used to answer an interaction
type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// sessionReply answers one interaction through the REST API
type sessionReply struct {
	s           interactionResponder
	interaction *discordgo.Interaction
}

func (r *sessionReply) Respond(ctx context.Context, resp *discordgo.InteractionResponse) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.s.InteractionRespond(r.interaction, resp, discordgo.WithContext(ctx))
}

// SessionLatency reads the heartbeat round trip of a live gateway connection
type SessionLatency struct {
	Session *discordgo.Session
}

// Latency reports the last completed heartbeat round trip. While a heartbeat is
// in flight the previous ack predates the send and no value is available.
func (l SessionLatency) Latency() (time.Duration, bool) {
	s := l.Session
	if s == nil {
		return 0, false
	}

	s.RLock()
	sent, ack := s.LastHeartbeatSent, s.LastHeartbeatAck
	s.RUnlock()

	if ack.IsZero() || sent.IsZero() || ack.Before(sent) {
		return 0, false
	}
	return ack.Sub(sent), true
}
