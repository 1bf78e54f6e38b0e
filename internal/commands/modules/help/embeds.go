package help

import (
	"slashbot/internal/commands/types"
	"slashbot/internal/utils"

	"github.com/bwmarrin/discordgo"
)

const helpTitle = "📖 Available Commands"

// summaryFields renders one field per command, in registry order
func summaryFields(cmds []*types.Command) []*discordgo.MessageEmbedField {
	fields := make([]*discordgo.MessageEmbedField, 0, len(cmds))
	for _, c := range cmds {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   c.Name(),
			Value:  c.Description(),
			Inline: false,
		})
	}
	return fields
}

// helpEmbeds spreads the command summaries over as many embeds as Discord's field
// limit requires. dropped counts summaries that did not fit on one message.
func helpEmbeds(cmds []*types.Command, invoker *discordgo.User) (embeds []*discordgo.MessageEmbed, dropped int) {
	chunks := utils.ChunkFields(summaryFields(cmds))

	if len(chunks) == 0 {
		embed := utils.NewEmbed(helpTitle)
		embed.Description = "No commands are registered yet."
		embed.Footer = utils.RequestedByFooter(invoker)
		return []*discordgo.MessageEmbed{embed}, 0
	}

	if len(chunks) > utils.MaxMessageEmbeds {
		for _, c := range chunks[utils.MaxMessageEmbeds:] {
			dropped += len(c)
		}
		chunks = chunks[:utils.MaxMessageEmbeds]
	}

	for idx, fields := range chunks {
		embed := utils.NewEmbed("")
		if idx == 0 {
			embed.Title = helpTitle
		}
		embed.Fields = fields
		embeds = append(embeds, embed)
	}
	embeds[len(embeds)-1].Footer = utils.RequestedByFooter(invoker)

	return embeds, dropped
}
