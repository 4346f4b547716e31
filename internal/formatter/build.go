package formatter

import (
	"strings"
	"unicode/utf8"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/datemath"
	"teamcity-notifier/pkg/textlimit"
)

// newBuildCard starts a card with the header fields every build card shares.
func newBuildCard(icon, heading string, color int, e model.BuildEvent) model.Card {
	p := e.Payload
	card := model.Card{
		Title:     textlimit.FormatForField(icon+" "+heading+": "+p.BuildType.Name, textlimit.Title),
		Color:     color,
		Timestamp: now(),
		Footer:    FooterBuild,
	}

	addField(&card, FieldProject, p.BuildType.ProjectName, true)
	addField(&card, FieldBuildType, p.BuildType.Name, true)
	addField(&card, FieldBuildNumber, "#"+p.Number, true)
	return card
}

// addField formats name and value for Discord and appends the field. Empty
// values become "Unknown" since Discord rejects blank fields.
func addField(card *model.Card, name, value string, inline bool) {
	value = textlimit.FormatForField(value, textlimit.FieldValue)
	if value == "" {
		value = unknownValue
	}
	card.AddField(textlimit.FormatForField(name, textlimit.FieldName), value, inline)
}

func addAgent(card *model.Card, e model.BuildEvent) {
	if e.HasAgent() {
		addField(card, FieldAgent, e.Payload.Agent.Name, true)
	}
}

func addCurrentStage(card *model.Card, e model.BuildEvent) {
	if !e.HasRunningInfo() {
		return
	}
	if stage := strings.TrimSpace(e.Payload.RunningInfo.CurrentStageText); stage != "" {
		addField(card, FieldCurrentStage, stage, false)
	}
}

// addLink appends the TeamCity link when webUrl is a usable URL. A URL too
// long for a markdown link in one field value is shown clipped instead.
func addLink(card *model.Card, e model.BuildEvent) {
	u := textlimit.ValidateURL(e.Payload.WebURL)
	if u == "" {
		return
	}
	link := "[" + linkLabel + "](" + u + ")"
	if utf8.RuneCountInString(link) > int(textlimit.FieldValue) {
		addField(card, FieldLink, u, false)
		return
	}
	card.AddField(FieldLink, link, false)
}

// addParsedDate appends a human date only when raw parses.
func addParsedDate(card *model.Card, name, raw string) {
	if t, ok := datemath.ParseTeamCity(raw); ok {
		addField(card, name, datemath.FormatHuman(t), true)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return unknownValue
}
