package utils

import (
	"github.com/bwmarrin/discordgo"
)

// MaxEmbedFields is the number of fields Discord accepts on one embed
const MaxEmbedFields = 25

// MaxMessageEmbeds is the number of embeds Discord accepts on one message
const MaxMessageEmbeds = 10

// NewEmbed creates a new informational embed with the given title
func NewEmbed(title string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: title,
		Color: Colors.Info(),
	}
}

// NewErrorEmbed creates a new error embed with the given title and description
func NewErrorEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ " + title,
		Description: description,
		Color:       Colors.Error(),
	}
}

// RequestedByFooter credits the user who asked for an embed
func RequestedByFooter(u *discordgo.User) *discordgo.MessageEmbedFooter {
	if u == nil {
		return nil
	}
	return &discordgo.MessageEmbedFooter{
		Text:    "Requested by " + u.Username,
		IconURL: u.AvatarURL(""),
	}
}

// ChunkFields splits fields into groups that each fit on a single embed.
// Returns nil for no fields.
func ChunkFields(fields []*discordgo.MessageEmbedField) [][]*discordgo.MessageEmbedField {
	var chunks [][]*discordgo.MessageEmbedField
	for start := 0; start < len(fields); start += MaxEmbedFields {
		end := min(start+MaxEmbedFields, len(fields))
		chunks = append(chunks, fields[start:end])
	}
	return chunks
}
