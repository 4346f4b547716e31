package formatter

import (
	"teamcity-notifier/internal/buildevent"
	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/jsontree"
	"teamcity-notifier/pkg/textlimit"
)

// Func renders one sanitized build event kind.
type Func func(model.BuildEvent) model.Card

var registry = map[model.EventKind]Func{
	model.EventBuildStarted:     FormatStarted,
	model.EventBuildFinished:    FormatFinished,
	model.EventBuildInterrupted: FormatInterrupted,
}

// Dispatch picks the specialized formatter for a raw webhook body. ok is false
// when the body lacks the fields every build card needs, when no formatter
// handles its kind, or when the formatter panics. Callers then fall back to
// BuildGeneric.
func Dispatch(v jsontree.Value) (card model.Card, ok bool) {
	kind := v.Field("eventKind")
	payload := v.Field("payload")
	if !v.IsObject() || kind.IsAbsent() || payload.IsAbsent() {
		return model.Card{}, false
	}

	buildType := payload.Field("buildType")
	if !buildType.Truthy() || !buildType.Field("name").Truthy() || !buildType.Field("projectName").Truthy() {
		return model.Card{}, false
	}

	if !kind.IsString() {
		return model.Card{}, false
	}
	format, found := registry[model.EventKind(kind.Str())]
	if !found {
		return model.Card{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			card, ok = model.Card{}, false
		}
	}()
	return format(buildevent.SanitizeBuildEvent(v)), true
}

// Minimal is the last-resort card, built from the event kind alone.
func Minimal(kind string) model.Card {
	if kind == "" {
		kind = unknownValue
	}
	return model.Card{
		Title:     textlimit.FormatForField(titlePrefixGeneric+kind, textlimit.Title),
		Color:     ColorFailure,
		Timestamp: now(),
		Footer:    FooterGeneric,
		Fields: []model.CardField{
			{Name: FieldNotice, Value: msgUnformattable},
		},
	}
}
