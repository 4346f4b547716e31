package formatter

import (
	"strings"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/datemath"
)

// FormatInterrupted renders a BUILD_INTERRUPTED event.
func FormatInterrupted(e model.BuildEvent) model.Card {
	p := e.Payload
	card := newBuildCard("⚠️", "Build Interrupted", ColorInterrupted, e)
	addField(&card, FieldStatus, firstNonEmpty(p.StatusText, p.Status), true)

	addAgent(&card, e)

	if ci := p.CanceledInfo; ci != nil {
		if reason := strings.TrimSpace(ci.Text); reason != "" {
			addField(&card, FieldCancelReason, reason, false)
		}
		addField(&card, FieldCanceledBy, ci.User.Username, true)
		if ci.Timestamp != "" {
			addParsedDate(&card, FieldCanceledAt, ci.Timestamp)
		}
	}

	switch {
	case e.HasRunningInfo():
		addField(&card, FieldElapsed, datemath.FormatElapsed(int64(p.RunningInfo.ElapsedSeconds)), true)
	case e.HasCanceledInfo():
		if d, ok := datemath.Duration(p.StartDate, p.CanceledInfo.Timestamp); ok {
			addField(&card, FieldElapsed, d, true)
		}
	}
	addCurrentStage(&card, e)

	// Shown even when the date does not parse.
	if p.StartDate != "" {
		addField(&card, FieldStartedAt, datemath.FormatTimestamp(p.StartDate), true)
	}
	addLink(&card, e)
	return card
}
