package trigger

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"teamcity-notifier/pkg/teamcity"
)

func TestResultCard(t *testing.T) {
	fixed := time.Date(2025, 8, 12, 3, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	t.Run("success", func(t *testing.T) {
		out := TriggerOutput{Target: DefaultTargets[0], RequestedBy: "mwong"}

		card := ResultCard("backend", out, nil)

		if card.Title != TitleTriggered || card.Color != ColorTriggered {
			t.Errorf("header = %q/%x", card.Title, card.Color)
		}
		if !card.Timestamp.Equal(fixed) {
			t.Errorf("timestamp = %v", card.Timestamp)
		}
		if f, _ := card.Field("Target"); f.Value != "Backend" {
			t.Errorf("Target = %q", f.Value)
		}
		if f, _ := card.Field("Requested By"); f.Value != "mwong" {
			t.Errorf("Requested By = %q", f.Value)
		}
	})

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unknown", fmt.Errorf("%w: nope", ErrUnknownTarget), "Unknown build target"},
		{"throttled", ErrTriggerThrottled, "This target was triggered moments ago, try again shortly"},
		{"timeout", fmt.Errorf("%w: deadline", teamcity.ErrTimeout), "TeamCity did not respond in time"},
		{"api", &teamcity.APIError{StatusCode: 403, Body: "denied"}, "TeamCity answered HTTP 403"},
		{"other", errors.New("connection refused"), "connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := ResultCard("nope", TriggerOutput{}, tt.err)

			if card.Title != TitleFailed || card.Color != ColorFailed {
				t.Errorf("header = %q/%x", card.Title, card.Color)
			}
			if f, _ := card.Field("Target"); f.Value != "nope" {
				t.Errorf("Target = %q", f.Value)
			}
			if f, _ := card.Field("Error"); f.Value != tt.want {
				t.Errorf("Error = %q, want %q", f.Value, tt.want)
			}
		})
	}
}
