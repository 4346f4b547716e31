package discord

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"teamcity-notifier/pkg/log"
)

// Config holds Discord bot settings.
type Config struct {
	BotToken string
	AppID    string
	// GuildID scopes commands to one server; empty registers them globally.
	GuildID string

	ChannelCacheSize int
	ChannelCacheTTL  time.Duration
	HTTPClient       *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return ErrMissingToken
	}
	if c.ChannelCacheSize <= 0 {
		c.ChannelCacheSize = DefaultChannelCacheSize
	}
	if c.ChannelCacheTTL <= 0 {
		c.ChannelCacheTTL = DefaultChannelCacheTTL
	}
	return nil
}

// Command describes a slash command.
type Command struct {
	Name        string
	Description string
	Options     []CommandOption
}

// CommandOption is a string option, optionally limited to fixed choices.
type CommandOption struct {
	Name        string
	Description string
	Required    bool
	Choices     []Choice
}

type Choice struct {
	Name  string
	Value string
}

// Interaction is one slash command invocation.
type Interaction struct {
	ID          string
	CommandName string
	ChannelID   string
	UserID      string
	Username    string
	Options     map[string]string

	raw *discordgo.Interaction
}

// Option returns the string value of a named option.
func (i *Interaction) Option(name string) string {
	return i.Options[name]
}

type CommandHandler func(ctx context.Context, ic *Interaction)

// discordImpl is the internal implementation of IDiscord
type discordImpl struct {
	l       log.Logger
	session *discordgo.Session
	appID   string
	guildID string

	channelTypes *expirable.LRU[string, discordgo.ChannelType]

	mu       sync.RWMutex
	handlers map[string]CommandHandler
}
