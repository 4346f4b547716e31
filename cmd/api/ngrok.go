package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/buger/jsonparser"

	"teamcity-notifier/pkg/log"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
)

var errNoTunnels = errors.New("ngrok has no active tunnels")

// logPublicWebhookURL prints the URL TeamCity should be pointed at when the
// service runs behind a local ngrok agent.
func logPublicWebhookURL(ctx context.Context, l log.Logger, ngrokAPIBase, route string) {
	publicURL, err := detectNgrokURL(ctx, ngrokAPIBase)
	if err != nil {
		l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		return
	}
	l.Infof(ctx, "✅ TeamCity webhook URL: %s%s", publicURL, route)
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS tunnel URL.
// It retries while ngrok is still starting up.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	url := ngrokAPIBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		publicURL, err := fetchTunnelURL(ctx, client, url)
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt < ngrokAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokInterval):
			}
		}
	}

	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokAttempts, lastErr)
}

func fetchTunnelURL(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ngrok API response: %w", err)
	}

	return pickTunnel(body)
}

// pickTunnel prefers HTTPS tunnels and falls back to the first one listed.
func pickTunnel(body []byte) (string, error) {
	var first, secure string
	var parseErr error

	_, err := jsonparser.ArrayEach(body, func(value []byte, _ jsonparser.ValueType, _ int, err error) {
		if err != nil || parseErr != nil {
			return
		}
		publicURL, err := jsonparser.GetString(value, "public_url")
		if err != nil {
			parseErr = err
			return
		}
		proto, _ := jsonparser.GetString(value, "proto")
		if first == "" {
			first = publicURL
		}
		if proto == "https" && secure == "" {
			secure = publicURL
		}
	}, "tunnels")
	if err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	if parseErr != nil {
		return "", fmt.Errorf("failed to decode ngrok tunnel: %w", parseErr)
	}

	switch {
	case secure != "":
		return secure, nil
	case first != "":
		return first, nil
	default:
		return "", errNoTunnels
	}
}
