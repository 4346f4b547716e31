package preview

import (
	"context"

	"github.com/gin-gonic/gin"

	"teamcity-notifier/internal/webhook"
	"teamcity-notifier/pkg/jsontree"
	pkgLog "teamcity-notifier/pkg/log"
)

// Handler is the interface for the preview handler
type Handler interface {
	HandleRender(c *gin.Context)
	HandleHealthCheck(c *gin.Context)
}

// Processor runs a webhook body through the card pipeline.
type Processor interface {
	Process(ctx context.Context, v jsontree.Value) webhook.Result
}

// New creates a new preview handler
func New(l pkgLog.Logger, p Processor) Handler {
	return &handler{
		l: l,
		p: p,
	}
}
