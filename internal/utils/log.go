package utils

import (
	"errors"
	"time"

	"slashbot/internal/config"

	"github.com/bwmarrin/discordgo"
)

// ChannelEmbedSender is the slice of *discordgo.Session needed to post an embed
type ChannelEmbedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// ErrNoLogChannel is returned when log_channel_id is not configured
var ErrNoLogChannel = errors.New("unable to log to channel: log_channel_id is not set")

// LogToChannel posts m as an error embed to the configured log channel
func LogToChannel(cfg *config.Config, s ChannelEmbedSender, title, m string) error {
	id := cfg.GetLogChannelID()
	if id == "" {
		return ErrNoLogChannel
	}

	logEmbed := NewErrorEmbed(title, m)
	logEmbed.Timestamp = time.Now().Format(time.RFC3339)

	_, err := s.ChannelMessageSendEmbed(id, logEmbed)
	return err
}
