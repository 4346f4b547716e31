package discord

import (
	"context"

	"teamcity-notifier/internal/trigger"
	pkgDiscord "teamcity-notifier/pkg/discord"
	pkgLog "teamcity-notifier/pkg/log"
)

// Handler serves the /build slash command.
type Handler interface {
	// Register creates the command and routes its invocations to HandleBuild.
	Register(ctx context.Context) error
	HandleBuild(ctx context.Context, ic *pkgDiscord.Interaction)
}

// New creates a new Discord delivery handler.
func New(l pkgLog.Logger, uc trigger.UseCase, bot pkgDiscord.IDiscord) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
