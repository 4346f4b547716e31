package buildevent

import (
	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/jsontree"
)

// SanitizeBuildEvent builds a fully populated BuildEvent from any value.
// Missing or mistyped required fields get defaults; optional records are
// copied only when the source carries them.
func SanitizeBuildEvent(v jsontree.Value) model.BuildEvent {
	payload := v.Field(fieldPayload)

	return model.BuildEvent{
		EventKind: model.EventKind(stringOr(v.Field(fieldEventKind), string(model.EventUnknown))),
		Payload:   sanitizePayload(payload),
	}
}

func sanitizePayload(p jsontree.Value) model.BuildPayload {
	status := stringOr(p.Field(fieldStatus), DefaultStatus)

	out := model.BuildPayload{
		ID:          intOr(p.Field(fieldID), 0),
		BuildTypeID: stringOr(p.Field(fieldBuildTypeID), DefaultBuildTypeID),
		Number:      stringOr(p.Field(fieldNumber), DefaultNumber),
		Status:      status,
		State:       stringOr(p.Field(fieldState), DefaultState),
		Href:        stringOr(p.Field(fieldHref), ""),
		WebURL:      stringOr(p.Field(fieldWebURL), ""),
		StatusText:  stringOr(p.Field(fieldStatusText), stringOr(p.Field(fieldStatus), DefaultStatusText)),
		BuildType:   sanitizeBuildType(p.Field(fieldBuildType)),

		StartDate:  stringOr(p.Field(fieldStartDate), ""),
		FinishDate: stringOr(p.Field(fieldFinishDate), ""),
		QueuedDate: stringOr(p.Field(fieldQueuedDate), ""),
	}

	if ri := p.Field(fieldRunningInfo); ri.IsObject() {
		out.RunningInfo = &model.RunningInfo{
			PercentageComplete:    floatOr(ri.Field("percentageComplete"), 0),
			ElapsedSeconds:        floatOr(ri.Field("elapsedSeconds"), 0),
			EstimatedTotalSeconds: floatOr(ri.Field("estimatedTotalSeconds"), 0),
			CurrentStageText:      stringOr(ri.Field("currentStageText"), ""),
			Outdated:              boolOr(ri.Field("outdated"), false),
			ProbablyHanging:       boolOr(ri.Field("probablyHanging"), false),
		}
	}

	if ci := p.Field(fieldCanceledInfo); ci.IsObject() {
		user := ci.Field("user")
		out.CanceledInfo = &model.CanceledInfo{
			Timestamp: stringOr(ci.Field("timestamp"), ""),
			Text:      stringOr(ci.Field("text"), ""),
			User: model.User{
				ID:       intOr(user.Field("id"), 0),
				Username: stringOr(user.Field("username"), ""),
				Name:     stringOr(user.Field("name"), ""),
			},
		}
	}

	if agent := p.Field(fieldAgent); agent.IsObject() {
		out.Agent = &model.Agent{
			ID:     intOr(agent.Field("id"), 0),
			Name:   stringOr(agent.Field("name"), ""),
			TypeID: intOr(agent.Field("typeId"), 0),
		}
	}

	if lc := p.Field(fieldLastChanges); lc.IsObject() {
		out.LastChanges = &model.LastChanges{
			Count:   int(intOr(lc.Field("count"), 0)),
			Changes: sanitizeChanges(lc),
		}
	}

	return out
}

func sanitizeBuildType(bt jsontree.Value) model.BuildType {
	return model.BuildType{
		ID:          stringOr(bt.Field(fieldID), DefaultBuildTypeID),
		Name:        stringOr(bt.Field(fieldName), DefaultBuildName),
		Description: stringOr(bt.Field(fieldDescription), ""),
		ProjectName: stringOr(bt.Field(fieldProjectName), DefaultProjectName),
		ProjectID:   stringOr(bt.Field(fieldProjectID), ""),
		Href:        stringOr(bt.Field(fieldHref), ""),
		WebURL:      stringOr(bt.Field(fieldWebURL), ""),
	}
}

// sanitizeChanges reads the change list. TeamCity names it "change"; some
// proxies pluralize it.
func sanitizeChanges(lc jsontree.Value) []model.Change {
	list := lc.Field("change")
	if !list.IsArray() {
		list = lc.Field("changes")
	}

	items := list.Array()
	if len(items) == 0 {
		return nil
	}

	changes := make([]model.Change, 0, len(items))
	for _, item := range items {
		if !item.IsObject() {
			continue
		}
		changes = append(changes, model.Change{
			ID:       intOr(item.Field("id"), 0),
			Version:  stringOr(item.Field("version"), ""),
			Username: stringOr(item.Field("username"), ""),
			Date:     stringOr(item.Field("date"), ""),
			Href:     stringOr(item.Field(fieldHref), ""),
			WebURL:   stringOr(item.Field(fieldWebURL), ""),
		})
	}
	return changes
}

func stringOr(v jsontree.Value, def string) string {
	if s := v.Str(); s != "" {
		return s
	}
	return def
}

func floatOr(v jsontree.Value, def float64) float64 {
	if n, ok := v.Num(); ok {
		return n
	}
	return def
}

func intOr(v jsontree.Value, def int64) int64 {
	if n, ok := v.Num(); ok {
		return int64(n)
	}
	return def
}

func boolOr(v jsontree.Value, def bool) bool {
	if b, ok := v.Bool(); ok {
		return b
	}
	return def
}
