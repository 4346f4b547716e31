package discord

import (
	"context"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/log"
)

// IDiscord sends cards to channels and serves slash commands.
// Implementations are safe for concurrent use.
type IDiscord interface {
	// SendCard posts card as an embed. Non-text channels are rejected.
	SendCard(ctx context.Context, channelID string, card model.Card) error

	// RegisterCommand creates or overwrites a slash command.
	RegisterCommand(ctx context.Context, cmd Command) error

	// OnCommand routes invocations of the named command to h.
	OnCommand(name string, h CommandHandler)

	// RespondDeferred acknowledges an interaction; the answer follows later.
	RespondDeferred(ctx context.Context, ic *Interaction) error

	// EditResponseCard replaces a deferred answer with card.
	EditResponseCard(ctx context.Context, ic *Interaction, card model.Card) error

	// Open connects to the gateway so commands are received.
	Open() error
	Close() error

	// Ready reports whether the gateway session is established.
	Ready() bool
}

// New creates a Discord bot client. It does not connect until Open.
func New(l log.Logger, cfg Config) (IDiscord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDiscordImpl(l, cfg)
}
