package types

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Invocation is everything a handler may read while serving one interaction.
// It is built by the dispatcher per interaction and dropped once the handler returns.
type Invocation struct {
	Interaction *discordgo.InteractionCreate
	Command     *Command
	Registry    Registry
	Latency     LatencySource
	Reply       ReplyChannel
}

// ReplyDeliveryError reports that the reply channel did not accept a command's response
type ReplyDeliveryError struct {
	Command string
	Err     error
}

func (e *ReplyDeliveryError) Error() string {
	return fmt.Sprintf("failed to deliver reply for /%s: %v", e.Command, e.Err)
}

func (e *ReplyDeliveryError) Unwrap() error {
	return e.Err
}

// Respond sends data as a channel message with source. The ephemeral flag is taken
// from the command descriptor. It makes exactly one attempt.
func (inv *Invocation) Respond(ctx context.Context, data *discordgo.InteractionResponseData) error {
	if inv.Command.Ephemeral {
		data.Flags |= discordgo.MessageFlagsEphemeral
	}

	err := inv.Reply.Respond(ctx, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		return &ReplyDeliveryError{Command: inv.Command.Name(), Err: err}
	}
	return nil
}

// Invoker returns the user who triggered the interaction, in guilds or DMs
func (inv *Invocation) Invoker() *discordgo.User {
	if inv.Interaction == nil || inv.Interaction.Interaction == nil {
		return nil
	}
	if inv.Interaction.Member != nil && inv.Interaction.Member.User != nil {
		return inv.Interaction.Member.User
	}
	return inv.Interaction.User
}
