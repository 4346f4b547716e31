package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamcity-notifier/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "TeamCity to Discord notifier"
	HealthVersion = "1.0.0"
	ServiceName   = "teamcity-notifier"
)

// Discord connection states reported by the health routes.
const (
	discordConnected    = "connected"
	discordDisconnected = "disconnected"
	discordDisabled     = "not configured"
)

// discordState describes the notifier connection for health payloads.
func (srv HTTPServer) discordState() string {
	switch {
	case srv.notifier == nil:
		return discordDisabled
	case srv.notifier.Ready():
		return discordConnected
	default:
		return discordDisconnected
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"discord": srv.discordState(),
	})
}

// readyCheck is ready when webhooks are routed and the Discord session is up.
// Without a session the /build command cannot be served, so the instance
// reports 503 until the gateway reconnects.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Discord session is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	state := srv.discordState()
	body := gin.H{
		"status":        "ready",
		"message":       HealthMessage,
		"version":       HealthVersion,
		"service":       ServiceName,
		"webhook_route": srv.webhookRoute,
		"discord":       state,
	}

	if state == discordDisconnected {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests. A dropped Discord session is
// reported but does not fail liveness; discordgo reconnects on its own.
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"discord": srv.discordState(),
	})
}
