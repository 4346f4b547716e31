package webhook

import (
	"context"
	"time"

	"teamcity-notifier/internal/model"
)

// Formatter names reported in logs and previews.
const (
	FormatterSpecialized = "specialized"
	FormatterGeneric     = "generic"
	FormatterMinimal     = "minimal"
)

const (
	DefaultSendTimeout = 30 * time.Second
	MaxBodyBytes       = 1 << 20
)

// Config holds delivery settings.
type Config struct {
	ChannelID   string
	SendTimeout time.Duration
}

// Notifier delivers a card to a chat channel.
type Notifier interface {
	SendCard(ctx context.Context, channelID string, card model.Card) error
}

// Result is the outcome of running one webhook body through the pipeline.
type Result struct {
	Kind      string     `json:"event_kind"`
	Formatter string     `json:"formatter"`
	Card      model.Card `json:"card"`
	Errors    []string   `json:"errors,omitempty"`
	Warnings  []string   `json:"warnings,omitempty"`
}
