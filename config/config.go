package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Notifier specifics
	Discord  DiscordConfig
	Webhook  WebhookConfig
	TeamCity TeamCityConfig
	Trigger  TriggerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DiscordConfig struct {
	BotToken  string
	AppID     string
	GuildID   string // empty registers commands globally
	ChannelID string // where webhook cards are posted
}

type WebhookConfig struct {
	Route       string
	SendTimeout time.Duration
	Preview     bool   // expose /test/render
	NgrokAPI    string // local ngrok API used to log the public webhook URL
}

type TeamCityConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type TriggerConfig struct {
	Targets        []TargetConfig
	CooldownPerMin int
}

// TargetConfig is one choice of the /build command.
type TargetConfig struct {
	Name        string
	Label       string
	BuildTypeID string
	Params      map[string]string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Discord
	cfg.Discord.BotToken = expandEnvVar(viper.GetString("discord.bot_token"))
	cfg.Discord.AppID = viper.GetString("discord.app_id")
	cfg.Discord.GuildID = viper.GetString("discord.guild_id")
	cfg.Discord.ChannelID = viper.GetString("discord.channel_id")
	if token := viper.GetString("discord_bot_token"); token != "" {
		cfg.Discord.BotToken = token
	}
	if channelID := viper.GetString("discord_channel_id"); channelID != "" {
		cfg.Discord.ChannelID = channelID
	}

	// Webhook ingress
	cfg.Webhook.Route = viper.GetString("webhook.route")
	cfg.Webhook.SendTimeout = viper.GetDuration("webhook.send_timeout")
	cfg.Webhook.Preview = viper.GetBool("webhook.preview")
	cfg.Webhook.NgrokAPI = viper.GetString("webhook.ngrok_api")
	if !strings.HasPrefix(cfg.Webhook.Route, "/") {
		cfg.Webhook.Route = "/" + cfg.Webhook.Route
	}

	// TeamCity
	cfg.TeamCity.BaseURL = viper.GetString("teamcity.base_url")
	cfg.TeamCity.Token = expandEnvVar(viper.GetString("teamcity.token"))
	cfg.TeamCity.Timeout = viper.GetDuration("teamcity.timeout")
	if tcURL := viper.GetString("teamcity_url"); tcURL != "" {
		cfg.TeamCity.BaseURL = tcURL
	}
	if tcToken := viper.GetString("teamcity_token"); tcToken != "" {
		cfg.TeamCity.Token = tcToken
	}

	// Build trigger
	cfg.Trigger.CooldownPerMin = viper.GetInt("trigger.cooldown_per_min")
	targets, err := loadTargets()
	if err != nil {
		return nil, err
	}
	cfg.Trigger.Targets = targets

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("webhook.route", "/webhook/teamcity")
	viper.SetDefault("webhook.send_timeout", "30s")
	viper.SetDefault("webhook.preview", true)
	viper.SetDefault("teamcity.timeout", "10s")
	viper.SetDefault("trigger.cooldown_per_min", 6)
}

// loadTargets reads trigger.targets, a list of maps in config.yaml.
func loadTargets() ([]TargetConfig, error) {
	if !viper.IsSet("trigger.targets") {
		return nil, nil
	}

	targetsList, ok := viper.Get("trigger.targets").([]interface{})
	if !ok {
		return nil, fmt.Errorf("trigger.targets must be a list")
	}

	var targets []TargetConfig
	seen := make(map[string]bool)
	for i, raw := range targetsList {
		targetMap, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("trigger.targets[%d] must be a map", i)
		}

		target := TargetConfig{
			Name:        getStringFromMap(targetMap, "name"),
			Label:       getStringFromMap(targetMap, "label"),
			BuildTypeID: getStringFromMap(targetMap, "build_type_id"),
			Params:      getStringMapFromMap(targetMap, "params"),
		}
		if target.Name == "" || target.BuildTypeID == "" {
			return nil, fmt.Errorf("trigger.targets[%d]: name and build_type_id are required", i)
		}
		if seen[target.Name] {
			return nil, fmt.Errorf("trigger.targets[%d]: duplicate name %q", i, target.Name)
		}
		seen[target.Name] = true
		targets = append(targets, target)
	}
	return targets, nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getStringMapFromMap(m map[string]interface{}, key string) map[string]string {
	raw, ok := m[key].(map[string]interface{})
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = fmt.Sprint(v)
	}
	return out
}
