package formatter

import (
	"fmt"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/datemath"
)

// FormatFinished renders a BUILD_FINISHED event. The color and icon follow
// the build status.
func FormatFinished(e model.BuildEvent) model.Card {
	p := e.Payload

	icon, heading, color := "❌", "Build Failed", ColorFailure
	if p.Status == statusSuccess {
		icon, heading, color = "✅", "Build Succeeded", ColorSuccess
	}

	card := newBuildCard(icon, heading, color, e)
	addField(&card, FieldStatus, firstNonEmpty(p.StatusText, p.Status), true)

	addAgent(&card, e)

	if p.StartDate != "" && p.FinishDate != "" {
		if d, ok := datemath.Duration(p.StartDate, p.FinishDate); ok {
			addField(&card, FieldDuration, d, true)
		}
	}
	if p.FinishDate != "" {
		addParsedDate(&card, FieldFinishedAt, p.FinishDate)
	}

	addChanges(&card, p.LastChanges)
	addLink(&card, e)
	return card
}

func addChanges(card *model.Card, lc *model.LastChanges) {
	if lc == nil {
		return
	}

	var latest model.Change
	if len(lc.Changes) > 0 {
		latest = lc.Changes[0]
	}

	switch {
	case lc.Count == 1:
		value := firstNonEmpty(latest.Username)
		if t, ok := datemath.ParseTeamCity(latest.Date); ok {
			value += " (" + datemath.FormatHuman(t) + ")"
		}
		addField(card, FieldLastChange, value, false)
	case lc.Count > 1:
		addField(card, FieldChanges,
			fmt.Sprintf("%d changes, latest by %s", lc.Count, firstNonEmpty(latest.Username)), false)
	}
}
