package preview

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teamcity-notifier/internal/webhook"
	"teamcity-notifier/pkg/discord"
	"teamcity-notifier/pkg/jsontree"
	pkgLog "teamcity-notifier/pkg/log"
	pkgResponse "teamcity-notifier/pkg/response"
)

type handler struct {
	l pkgLog.Logger
	p Processor
}

// HandleRender renders a webhook body without posting it to Discord
// @Summary Preview a webhook card
// @Description Run a TeamCity webhook body through the formatters and return the resulting card and embed
// @Tags test
// @Accept json
// @Produce json
// @Param request body object true "TeamCity webhook payload"
// @Success 200 {object} RenderResponse
// @Failure 400 {object} response.Resp
// @Router /test/render [post]
func (h *handler) HandleRender(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, webhook.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			err = webhook.ErrBodyTooLarge
		}
		pkgResponse.Error(c, err, nil)
		return
	}
	v, err := jsontree.Parse(body)
	if err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	res := h.p.Process(ctx, v)
	h.l.Infof(ctx, "internal.preview.HandleRender: kind=%s formatter=%s", res.Kind, res.Formatter)

	c.JSON(http.StatusOK, RenderResponse{
		Result:     res,
		Embed:      discord.ToEmbed(res.Card),
		RenderedAt: pkgResponse.DateTime(time.Now()),
	})
}

// HandleHealthCheck returns the health status of preview endpoints
// @Summary Preview health check
// @Description Check if preview endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Preview endpoints are available",
	})
}
