package webhook

import (
	"sync"

	pkgLog "teamcity-notifier/pkg/log"
)

type Handler struct {
	notifier Notifier
	cfg      Config
	l        pkgLog.Logger
	inflight sync.WaitGroup
}

func NewHandler(notifier Notifier, cfg Config, l pkgLog.Logger) *Handler {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}
	return &Handler{
		notifier: notifier,
		cfg:      cfg,
		l:        l,
	}
}

// Wait blocks until every accepted delivery has been sent or has failed.
func (h *Handler) Wait() {
	h.inflight.Wait()
}
