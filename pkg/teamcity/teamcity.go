package teamcity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/oauth2"
)

// newTeamCityImpl wraps the configured HTTP client with bearer-token auth.
func newTeamCityImpl(cfg Config) *teamcityImpl {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, cfg.HTTPClient)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.Token,
		TokenType:   "Bearer",
	}))
	client.Timeout = cfg.Timeout

	return &teamcityImpl{
		baseURL:    cfg.BaseURL,
		httpClient: client,
	}
}

// TriggerBuild queues req.BuildTypeID. A timeout is reported as ErrTimeout and
// a non-2xx answer as *APIError.
func (t *teamcityImpl) TriggerBuild(ctx context.Context, req TriggerRequest) (TriggerResponse, error) {
	if strings.TrimSpace(req.BuildTypeID) == "" {
		return TriggerResponse{}, ErrMissingBuildTypeID
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.triggerURL(req), nil)
	if err != nil {
		return TriggerResponse{}, fmt.Errorf("teamcity: failed to create request: %w", err)
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return TriggerResponse{}, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return TriggerResponse{}, fmt.Errorf("teamcity: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return TriggerResponse{}, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	return TriggerResponse{StatusCode: resp.StatusCode, Body: string(raw)}, nil
}

// BaseURL returns the server the client talks to.
func (t *teamcityImpl) BaseURL() string {
	return t.baseURL
}

// triggerURL keeps each name/value pair adjacent, ordered by name.
func (t *teamcityImpl) triggerURL(req TriggerRequest) string {
	var b strings.Builder
	b.WriteString(t.baseURL)
	b.WriteString(triggerPath)
	b.WriteString("?add2Queue=")
	b.WriteString(url.QueryEscape(req.BuildTypeID))

	names := make([]string, 0, len(req.Params))
	for name := range req.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b.WriteString("&name=")
		b.WriteString(url.QueryEscape(name))
		b.WriteString("&value=")
		b.WriteString(url.QueryEscape(req.Params[name]))
	}
	return b.String()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
