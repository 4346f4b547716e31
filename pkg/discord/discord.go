package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/log"
)

func newDiscordImpl(l log.Logger, cfg Config) (*discordImpl, error) {
	session, err := discordgo.New(tokenPrefix + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("discord: failed to create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	if cfg.HTTPClient != nil {
		session.Client = cfg.HTTPClient
	}

	d := &discordImpl{
		l:            l,
		session:      session,
		appID:        cfg.AppID,
		guildID:      cfg.GuildID,
		channelTypes: expirable.NewLRU[string, discordgo.ChannelType](cfg.ChannelCacheSize, nil, cfg.ChannelCacheTTL),
		handlers:     make(map[string]CommandHandler),
	}
	session.AddHandler(d.handleInteraction)
	return d, nil
}

// SendCard posts card to channelID after checking the channel accepts text.
func (d *discordImpl) SendCard(ctx context.Context, channelID string, card model.Card) error {
	if channelID == "" {
		return ErrMissingChannel
	}
	if err := d.ensureTextChannel(ctx, channelID); err != nil {
		return err
	}

	if _, err := d.session.ChannelMessageSendEmbed(channelID, ToEmbed(card), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: failed to send card: %w", err)
	}
	return nil
}

func (d *discordImpl) ensureTextChannel(ctx context.Context, channelID string) error {
	typ, ok := d.channelTypes.Get(channelID)
	if !ok {
		ch, err := d.session.Channel(channelID, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("discord: failed to resolve channel %s: %w", channelID, err)
		}
		typ = ch.Type
		d.channelTypes.Add(channelID, typ)
	}

	if !isTextChannel(typ) {
		return fmt.Errorf("%w: %s", ErrNotTextChannel, channelID)
	}
	return nil
}

// RegisterCommand creates the command in the configured guild, or globally.
func (d *discordImpl) RegisterCommand(ctx context.Context, cmd Command) error {
	if d.appID == "" {
		return ErrMissingAppID
	}

	_, err := d.session.ApplicationCommandCreate(d.appID, d.guildID, toApplicationCommand(cmd), discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord: failed to register /%s: %w", cmd.Name, err)
	}
	d.l.Infof(ctx, "discord.RegisterCommand: registered /%s (guild=%q)", cmd.Name, d.guildID)
	return nil
}

func (d *discordImpl) OnCommand(name string, h CommandHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = h
}

func (d *discordImpl) RespondDeferred(ctx context.Context, ic *Interaction) error {
	err := d.session.InteractionRespond(ic.raw, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord: failed to defer response: %w", err)
	}
	return nil
}

func (d *discordImpl) EditResponseCard(ctx context.Context, ic *Interaction, card model.Card) error {
	embeds := []*discordgo.MessageEmbed{ToEmbed(card)}
	if _, err := d.session.InteractionResponseEdit(ic.raw, &discordgo.WebhookEdit{Embeds: &embeds}, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: failed to edit response: %w", err)
	}
	return nil
}

func (d *discordImpl) Open() error {
	if err := d.session.Open(); err != nil {
		return fmt.Errorf("discord: failed to open gateway: %w", err)
	}
	return nil
}

func (d *discordImpl) Close() error {
	return d.session.Close()
}

func (d *discordImpl) Ready() bool {
	d.session.RLock()
	defer d.session.RUnlock()
	return d.session.DataReady
}

func (d *discordImpl) handleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ic := newInteraction(i.Interaction)

	d.mu.RLock()
	h, ok := d.handlers[ic.CommandName]
	d.mu.RUnlock()

	ctx := context.Background()
	if !ok {
		d.l.Warnf(ctx, "discord.handleInteraction: no handler for /%s", ic.CommandName)
		return
	}
	h(ctx, ic)
}
