package teamcity

import "time"

const (
	// DefaultTimeout bounds a single trigger call
	DefaultTimeout = 10 * time.Second

	triggerPath     = "/action.html"
	maxResponseBody = 64 << 10
)
