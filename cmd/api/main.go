package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"teamcity-notifier/config"
	_ "teamcity-notifier/docs" // Swagger docs
	"teamcity-notifier/internal/httpserver"
	"teamcity-notifier/internal/preview"
	"teamcity-notifier/internal/trigger"
	triggerDiscord "teamcity-notifier/internal/trigger/delivery/discord"
	triggerUC "teamcity-notifier/internal/trigger/usecase"
	"teamcity-notifier/internal/webhook"
	"teamcity-notifier/pkg/discord"
	"teamcity-notifier/pkg/log"
	"teamcity-notifier/pkg/teamcity"
)

// @title       TeamCity Notifier API
// @description Turns TeamCity build webhooks into Discord cards and triggers builds from Discord.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TeamCity Notifier...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Discord bot
	bot, err := discord.New(logger, discord.Config{
		BotToken: cfg.Discord.BotToken,
		AppID:    cfg.Discord.AppID,
		GuildID:  cfg.Discord.GuildID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Discord client: ", err)
		return
	}
	if cfg.Discord.ChannelID == "" {
		logger.Warn(ctx, "DISCORD_CHANNEL_ID is not set: webhook cards will fail to send")
	}

	// 4. Build trigger (optional)
	if cfg.TeamCity.BaseURL != "" && cfg.TeamCity.Token != "" && cfg.Discord.AppID != "" {
		if err := setupTrigger(ctx, logger, cfg, bot); err != nil {
			logger.Warnf(ctx, "Build trigger disabled: %v", err)
		} else {
			logger.Info(ctx, "✅ /build command registered")
		}
	} else {
		logger.Warn(ctx, "Build trigger skipped: TEAMCITY_URL, TEAMCITY_TOKEN, or discord.app_id is missing")
	}

	if err := bot.Open(); err != nil {
		logger.Warnf(ctx, "Discord gateway unavailable, slash commands disabled: %v", err)
	}
	defer bot.Close()

	// 5. Webhook ingress
	webhookHandler := webhook.NewHandler(bot, webhook.Config{
		ChannelID:   cfg.Discord.ChannelID,
		SendTimeout: cfg.Webhook.SendTimeout,
	}, logger)

	var previewHandler preview.Handler
	if cfg.Webhook.Preview {
		previewHandler = preview.New(logger, webhookHandler)
	}

	if cfg.Webhook.NgrokAPI != "" {
		go logPublicWebhookURL(ctx, logger, cfg.Webhook.NgrokAPI, cfg.Webhook.Route)
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookRoute:   cfg.Webhook.Route,
		WebhookHandler: webhookHandler,
		PreviewHandler: previewHandler,
		Notifier:       bot,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	webhookHandler.Wait()
	logger.Info(ctx, "Server stopped gracefully")
}

func setupTrigger(ctx context.Context, logger log.Logger, cfg *config.Config, bot discord.IDiscord) error {
	tc, err := teamcity.New(teamcity.Config{
		BaseURL: cfg.TeamCity.BaseURL,
		Token:   cfg.TeamCity.Token,
		Timeout: cfg.TeamCity.Timeout,
	})
	if err != nil {
		return err
	}

	uc, err := triggerUC.New(logger, tc, toTargets(cfg.Trigger.Targets), cfg.Trigger.CooldownPerMin)
	if err != nil {
		return err
	}

	return triggerDiscord.New(logger, uc, bot).Register(ctx)
}

func toTargets(in []config.TargetConfig) []trigger.Target {
	targets := make([]trigger.Target, 0, len(in))
	for _, t := range in {
		targets = append(targets, trigger.Target{
			Name:        t.Name,
			Label:       t.Label,
			BuildTypeID: t.BuildTypeID,
			Params:      t.Params,
		})
	}
	return targets
}
