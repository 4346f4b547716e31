package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	writeConfig(t, "environment:\n  name: test\n")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Webhook.Route != "/webhook/teamcity" {
		t.Errorf("route = %q", cfg.Webhook.Route)
	}
	if cfg.Webhook.SendTimeout != 30*time.Second || cfg.TeamCity.Timeout != 10*time.Second {
		t.Errorf("timeouts = %v / %v", cfg.Webhook.SendTimeout, cfg.TeamCity.Timeout)
	}
	if cfg.Trigger.CooldownPerMin != 6 || cfg.Trigger.Targets != nil {
		t.Errorf("trigger = %+v", cfg.Trigger)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	writeConfig(t, `
webhook:
  route: hooks/tc
teamcity:
  base_url: https://ci.example.com
  token: ${TC_SECRET}
trigger:
  targets:
    - name: backend
      label: Backend
      build_type_id: Backend_Build
      params:
        branch: main
`)
	t.Setenv("TC_SECRET", "from-env")
	t.Setenv("DISCORD_BOT_TOKEN", "bot-token")
	t.Setenv("DISCORD_CHANNEL_ID", "123")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Webhook.Route != "/hooks/tc" {
		t.Errorf("route = %q, want leading slash added", cfg.Webhook.Route)
	}
	if cfg.TeamCity.Token != "from-env" {
		t.Errorf("token = %q, want expanded", cfg.TeamCity.Token)
	}
	if cfg.Discord.BotToken != "bot-token" || cfg.Discord.ChannelID != "123" {
		t.Errorf("discord = %+v", cfg.Discord)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.HTTPServer.Port)
	}
	if len(cfg.Trigger.Targets) != 1 {
		t.Fatalf("targets = %+v", cfg.Trigger.Targets)
	}
	if tg := cfg.Trigger.Targets[0]; tg.BuildTypeID != "Backend_Build" || tg.Params["branch"] != "main" {
		t.Errorf("target = %+v", tg)
	}
}

func TestLoad_InvalidTargets(t *testing.T) {
	writeConfig(t, `
trigger:
  targets:
    - name: backend
`)

	if _, err := Load(); err == nil {
		t.Error("expected error for target without build_type_id")
	}
}
