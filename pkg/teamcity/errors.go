package teamcity

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBaseURL     = errors.New("teamcity: base URL is required")
	ErrMissingToken       = errors.New("teamcity: token is required")
	ErrMissingBuildTypeID = errors.New("teamcity: build type id is required")
	ErrTimeout            = errors.New("teamcity: request timed out")
)

// APIError is returned when TeamCity answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("teamcity: API error %d: %s", e.StatusCode, e.Body)
}
