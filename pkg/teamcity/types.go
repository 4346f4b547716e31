package teamcity

import (
	"net/http"
	"strings"
	"time"
)

// Config holds TeamCity client settings.
type Config struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	return nil
}

// TriggerRequest names the build configuration to queue. Params are sent as
// name/value pairs.
type TriggerRequest struct {
	BuildTypeID string
	Params      map[string]string
}

// TriggerResponse is informational; TeamCity answers with a short text body.
type TriggerResponse struct {
	StatusCode int
	Body       string
}

// teamcityImpl is the internal implementation of ITeamCity
type teamcityImpl struct {
	baseURL    string
	httpClient *http.Client
}
