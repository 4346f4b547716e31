package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"teamcity-notifier/internal/model"
)

// ToEmbed converts a card into a Discord embed.
func ToEmbed(card model.Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Type:   discordgo.EmbedTypeRich,
		Title:  card.Title,
		Color:  card.Color,
		Fields: make([]*discordgo.MessageEmbedField, 0, len(card.Fields)),
	}
	if !card.Timestamp.IsZero() {
		embed.Timestamp = card.Timestamp.Format(time.RFC3339)
	}
	if card.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: card.Footer}
	}

	for _, f := range card.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return embed
}

// isTextChannel reports whether messages can be posted to a channel type.
func isTextChannel(t discordgo.ChannelType) bool {
	switch t {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeDM,
		discordgo.ChannelTypeGroupDM,
		discordgo.ChannelTypeGuildNewsThread,
		discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread:
		return true
	}
	return false
}
