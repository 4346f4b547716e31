package preview

import (
	"github.com/bwmarrin/discordgo"

	"teamcity-notifier/internal/webhook"
	"teamcity-notifier/pkg/response"
)

// RenderResponse is what the webhook would have sent for a body.
type RenderResponse struct {
	webhook.Result
	Embed      *discordgo.MessageEmbed `json:"embed"`
	RenderedAt response.DateTime       `json:"rendered_at"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
