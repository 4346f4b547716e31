package formatter

import (
	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/datemath"
	"teamcity-notifier/pkg/jsontree"
)

// FormatStarted renders a BUILD_STARTED event.
func FormatStarted(e model.BuildEvent) model.Card {
	p := e.Payload
	card := newBuildCard("🚀", "Build Started", ColorStarted, e)
	addField(&card, FieldStatus, firstNonEmpty(p.StatusText, p.State), true)

	addAgent(&card, e)

	if e.HasRunningInfo() {
		ri := p.RunningInfo
		addField(&card, FieldProgress, jsontree.FormatNumber(ri.PercentageComplete)+"%", true)
		addField(&card, FieldTimeRemaining,
			datemath.FormatEstimatedRemaining(int64(ri.ElapsedSeconds), int64(ri.EstimatedTotalSeconds)), true)
	}
	addCurrentStage(&card, e)

	if p.StartDate != "" {
		addParsedDate(&card, FieldStartedAt, p.StartDate)
	}
	addLink(&card, e)
	return card
}
