package bot

import (
	"testing"

	"slashbot/internal/config"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type responseCapture struct {
	responses []*discordgo.InteractionResponse
}

func (c *responseCapture) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	c.responses = append(c.responses, resp)
	return nil
}

func interaction(t discordgo.InteractionType) *discordgo.InteractionCreate {
	i := &discordgo.Interaction{Type: t}
	if t == discordgo.InteractionApplicationCommand {
		i.Data = discordgo.ApplicationCommandInteractionData{Name: "ping"}
	}
	return &discordgo.InteractionCreate{Interaction: i}
}

func TestRouteInteractionBeforeReady(t *testing.T) {
	tests := []struct {
		name     string
		typ      discordgo.InteractionType
		wantType discordgo.InteractionResponseType
	}{
		{"slash command", discordgo.InteractionApplicationCommand, discordgo.InteractionResponseChannelMessageWithSource},
		{"autocomplete", discordgo.InteractionApplicationCommandAutocomplete, discordgo.InteractionApplicationCommandAutocompleteResult},
		{"ping", discordgo.InteractionPing, discordgo.InteractionResponsePong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bot{config: config.NewMockConfig(nil)}
			r := &responseCapture{}
			handled := false

			b.routeInteraction(r, interaction(tt.typ), func(*discordgo.InteractionCreate) { handled = true })

			assert.False(t, handled)
			require.Len(t, r.responses, 1)
			assert.Equal(t, tt.wantType, r.responses[0].Type)
		})
	}
}

func TestRouteInteractionStartupReplyIsEphemeral(t *testing.T) {
	b := &Bot{config: config.NewMockConfig(nil)}
	r := &responseCapture{}

	b.routeInteraction(r, interaction(discordgo.InteractionApplicationCommand), func(*discordgo.InteractionCreate) {})

	require.Len(t, r.responses, 1)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, r.responses[0].Data.Flags)
}

func TestRouteInteractionWhenReady(t *testing.T) {
	b := &Bot{config: config.NewMockConfig(nil)}
	b.ready.Store(true)
	r := &responseCapture{}

	var handled []discordgo.InteractionType
	handle := func(i *discordgo.InteractionCreate) { handled = append(handled, i.Type) }

	b.routeInteraction(r, interaction(discordgo.InteractionApplicationCommand), handle)
	b.routeInteraction(r, interaction(discordgo.InteractionMessageComponent), handle)

	assert.Equal(t, []discordgo.InteractionType{discordgo.InteractionApplicationCommand}, handled)
	assert.Empty(t, r.responses)
}
