package webhook

import (
	"context"
	"time"

	"teamcity-notifier/internal/buildevent"
	"teamcity-notifier/internal/formatter"
	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/jsontree"
)

// Process turns a webhook body into a card. It tries the specialized
// formatter, then the generic one, then the minimal card, and never panics.
func (h *Handler) Process(ctx context.Context, v jsontree.Value) (res Result) {
	start := time.Now()
	res.Kind = eventKind(v)

	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "internal.webhook.Process: recovered from panic: %v", r)
			res.Card, res.Formatter = formatter.Minimal(res.Kind), FormatterMinimal
		}
		h.l.Infof(ctx, "internal.webhook.Process: kind=%s formatter=%s fields=%d latency=%s",
			res.Kind, res.Formatter, len(res.Card.Fields), time.Since(start))
	}()

	h.validate(ctx, v, &res)

	if card, ok := formatter.Dispatch(v); ok {
		res.Card, res.Formatter = card, FormatterSpecialized
		return res
	}

	card := formatter.BuildGeneric(v)
	if card.Title == "" || len(card.Fields) == 0 {
		res.Card, res.Formatter = formatter.Minimal(res.Kind), FormatterMinimal
		return res
	}
	res.Card, res.Formatter = card, FormatterGeneric
	return res
}

// validate records structural problems. They are logged, never fatal.
func (h *Handler) validate(ctx context.Context, v jsontree.Value, res *Result) {
	var vr model.ValidationResult
	if buildevent.LooksLikeBuildEvent(v) {
		vr = buildevent.ValidateBuildEvent(v)
	} else {
		vr = buildevent.ValidateGeneric(v)
	}

	res.Errors, res.Warnings = vr.Errors, vr.Warnings
	if msg := buildevent.FormatErrorsForDisplay(vr); msg != "" {
		h.l.Warnf(ctx, "internal.webhook.validate: kind=%s %s", res.Kind, msg)
	}
}

func eventKind(v jsontree.Value) string {
	if k := v.Field("eventKind"); k.IsString() && k.Str() != "" {
		return k.Str()
	}
	return string(model.EventUnknown)
}
