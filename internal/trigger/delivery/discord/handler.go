package discord

import (
	"context"
	"time"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/internal/trigger"
	pkgDiscord "teamcity-notifier/pkg/discord"
	pkgLog "teamcity-notifier/pkg/log"
)

const (
	CommandName = "build"
	OptionName  = "target"

	// Discord caps a string option at 25 choices.
	maxChoices     = 25
	commandTimeout = 15 * time.Second
)

type handler struct {
	l   pkgLog.Logger
	uc  trigger.UseCase
	bot pkgDiscord.IDiscord
}

func (h *handler) Register(ctx context.Context) error {
	if err := h.bot.RegisterCommand(ctx, h.command()); err != nil {
		return err
	}
	h.bot.OnCommand(CommandName, h.HandleBuild)
	return nil
}

func (h *handler) command() pkgDiscord.Command {
	targets := h.uc.Targets()
	if len(targets) > maxChoices {
		targets = targets[:maxChoices]
	}

	choices := make([]pkgDiscord.Choice, 0, len(targets))
	for _, t := range targets {
		choices = append(choices, pkgDiscord.Choice{Name: t.DisplayName(), Value: t.Name})
	}

	return pkgDiscord.Command{
		Name:        CommandName,
		Description: "Trigger a TeamCity build",
		Options: []pkgDiscord.CommandOption{{
			Name:        OptionName,
			Description: "What to build",
			Required:    true,
			Choices:     choices,
		}},
	}
}

// HandleBuild defers the reply, queues the build and edits the reply with
// the result card. Discord requires the deferral within three seconds.
func (h *handler) HandleBuild(ctx context.Context, ic *pkgDiscord.Interaction) {
	ctx = pkgLog.WithTraceID(ctx, ic.ID)

	if err := h.bot.RespondDeferred(ctx, ic); err != nil {
		h.l.Errorf(ctx, "internal.trigger.delivery.discord.HandleBuild: defer failed: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	target := ic.Option(OptionName)
	sc := model.Scope{UserID: ic.UserID, Username: ic.Username}

	out, err := h.uc.Trigger(ctx, sc, trigger.TriggerInput{Target: target})
	if err != nil {
		h.l.Warnf(ctx, "internal.trigger.delivery.discord.HandleBuild: target=%s user=%s: %v", target, ic.Username, err)
	}

	if err := h.bot.EditResponseCard(ctx, ic, trigger.ResultCard(target, out, err)); err != nil {
		h.l.Errorf(ctx, "internal.trigger.delivery.discord.HandleBuild: edit response failed: %v", err)
	}
}
