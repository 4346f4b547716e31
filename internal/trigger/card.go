package trigger

import (
	"errors"
	"fmt"
	"time"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/teamcity"
	"teamcity-notifier/pkg/textlimit"
)

const (
	ColorTriggered = 0x27AE60
	ColorFailed    = 0xE74C3C

	TitleTriggered = "✅ Build Triggered"
	TitleFailed    = "❌ Build Trigger Failed"
	Footer         = "TeamCity Build Trigger"
)

var now = time.Now

// ResultCard renders the outcome of a trigger request. target is what the
// user asked for; it is shown even when it did not resolve.
func ResultCard(target string, out TriggerOutput, err error) model.Card {
	if err != nil {
		card := newCard(TitleFailed, ColorFailed)
		card.AddField("Target", fieldValue(target), true)
		card.AddField("Status", "Failed", true)
		card.AddField("Error", fieldValue(describeError(err)), false)
		return card
	}

	card := newCard(TitleTriggered, ColorTriggered)
	card.AddField("Target", fieldValue(out.Target.DisplayName()), true)
	card.AddField("Status", "Queued", true)
	if out.RequestedBy != "" {
		card.AddField("Requested By", fieldValue(out.RequestedBy), true)
	}
	card.AddField("Build Configuration", fieldValue(out.Target.BuildTypeID), false)
	return card
}

func newCard(title string, color int) model.Card {
	return model.Card{
		Title:     title,
		Color:     color,
		Timestamp: now(),
		Footer:    Footer,
	}
}

func fieldValue(s string) string {
	if v := textlimit.FormatForField(s, textlimit.FieldValue); v != "" {
		return v
	}
	return "Unknown"
}

// describeError maps trigger failures to text fit for chat users.
func describeError(err error) string {
	var apiErr *teamcity.APIError
	switch {
	case errors.Is(err, ErrUnknownTarget), errors.Is(err, ErrEmptyTarget):
		return "Unknown build target"
	case errors.Is(err, ErrTriggerThrottled):
		return "This target was triggered moments ago, try again shortly"
	case errors.Is(err, teamcity.ErrTimeout):
		return "TeamCity did not respond in time"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("TeamCity answered HTTP %d", apiErr.StatusCode)
	}
	return err.Error()
}
