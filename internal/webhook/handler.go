package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teamcity-notifier/pkg/jsontree"
	pkgLog "teamcity-notifier/pkg/log"
	pkgResponse "teamcity-notifier/pkg/response"
)

var ErrBodyTooLarge = errors.New("webhook body too large")

// HandleTeamCityWebhook acknowledges a TeamCity delivery and sends its card
// in the background.
// @Summary Receive a TeamCity webhook
// @Description Render the event as a Discord card and post it to the configured channel
// @Tags webhook
// @Accept json
// @Produce json
// @Param request body object true "TeamCity webhook payload"
// @Success 200 {object} response.AckResp
// @Failure 400 {object} response.Resp
// @Router /webhook/teamcity [post]
func (h *Handler) HandleTeamCityWebhook(c *gin.Context) {
	ctx := c.Request.Context()
	deliveryID := pkgLog.TraceID(ctx)
	if deliveryID == "" {
		deliveryID = uuid.NewString()
		ctx = pkgLog.WithTraceID(ctx, deliveryID)
	}

	v, err := readBody(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.webhook.HandleTeamCityWebhook: rejected body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	h.inflight.Add(1)
	go h.processWebhookAsync(deliveryID, v)

	pkgResponse.Accepted(c, deliveryID)
}

// processWebhookAsync builds the card and sends it with its own deadline,
// detached from the HTTP request.
func (h *Handler) processWebhookAsync(deliveryID string, v jsontree.Value) {
	defer h.inflight.Done()

	ctx, cancel := context.WithTimeout(context.Background(), h.cfg.SendTimeout)
	defer cancel()
	ctx = pkgLog.WithTraceID(ctx, deliveryID)

	res := h.Process(ctx, v)

	if err := h.notifier.SendCard(ctx, h.cfg.ChannelID, res.Card); err != nil {
		h.l.Errorf(ctx, "internal.webhook.processWebhookAsync: send %s card failed: %v", res.Kind, err)
		return
	}
	h.l.Infof(ctx, "internal.webhook.processWebhookAsync: delivered %s card", res.Kind)
}

func readBody(c *gin.Context) (jsontree.Value, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return jsontree.Value{}, ErrBodyTooLarge
		}
		return jsontree.Value{}, err
	}
	return jsontree.Parse(body)
}
