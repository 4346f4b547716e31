package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"teamcity-notifier/internal/preview"
	"teamcity-notifier/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// TeamCity webhook ingress
	webhookRoute   string
	webhookHandler WebhookHandler

	// Card preview
	previewHandler preview.Handler

	// Chat connection reported by /ready and /live
	notifier NotifierStatus
}

// NotifierStatus reports whether the chat connection is up.
type NotifierStatus interface {
	Ready() bool
}

// WebhookHandler receives TeamCity deliveries.
type WebhookHandler interface {
	HandleTeamCityWebhook(c *gin.Context)
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	WebhookRoute   string
	WebhookHandler WebhookHandler

	PreviewHandler preview.Handler

	Notifier NotifierStatus
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		webhookRoute:   cfg.WebhookRoute,
		webhookHandler: cfg.WebhookHandler,
		previewHandler: cfg.PreviewHandler,
		notifier:       cfg.Notifier,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.webhookHandler != nil && srv.webhookRoute == "" {
		return errors.New("webhook route is required")
	}
	return nil
}
