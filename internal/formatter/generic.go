package formatter

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"teamcity-notifier/internal/model"
	"teamcity-notifier/pkg/datemath"
	"teamcity-notifier/pkg/jsontree"
	"teamcity-notifier/pkg/textlimit"
)

var now = time.Now

// BuildGeneric renders any webhook body as a card by walking its payload.
// It never panics and always returns a displayable card.
func BuildGeneric(v jsontree.Value) model.Card {
	card := model.Card{
		Title:     textlimit.FormatForField(titlePrefixGeneric+genericKind(v), textlimit.Title),
		Color:     ColorGeneric,
		Timestamp: now(),
		Footer:    textlimit.FormatForField(FooterGeneric, textlimit.Footer),
	}

	if !v.IsObject() {
		card.AddField(FieldError, msgInvalidEvent, false)
		return card
	}

	payload := v.Field("payload").Object()
	if payload == nil {
		card.AddField(FieldPayload, msgNoPayload, false)
		return card
	}

	card.Fields = walkPayload(payload)
	return card
}

func genericKind(v jsontree.Value) string {
	if kind := v.Field("eventKind"); kind.Truthy() {
		return kind.String()
	}
	return unknownValue
}

func walkPayload(payload *jsontree.Object) (fields []model.CardField) {
	defer func() {
		if r := recover(); r != nil {
			fields = []model.CardField{{Name: FieldError, Value: msgPayloadFailed}}
		}
	}()

	w := &walker{visited: make(map[*jsontree.Object]struct{})}
	w.walkObject(payload, "", 0)
	return w.fields
}

// walker flattens nested objects into card fields. visited holds every
// object descended into so far, which also breaks reference cycles.
type walker struct {
	fields  []model.CardField
	visited map[*jsontree.Object]struct{}
}

func (w *walker) full() bool {
	return len(w.fields) >= genericMaxFields
}

func (w *walker) walkObject(obj *jsontree.Object, prefix string, depth int) {
	if depth > genericMaxDepth || w.full() {
		return
	}
	if _, seen := w.visited[obj]; seen {
		return
	}
	w.visited[obj] = struct{}{}

	for _, key := range orderedKeys(obj) {
		if w.full() {
			return
		}
		w.walkEntry(key, obj.Field(key), prefix, depth)
	}
}

func (w *walker) walkEntry(key string, v jsontree.Value, prefix string, depth int) {
	path := key
	if prefix != "" {
		path = prefix + "." + key
	}

	switch {
	case v.IsAbsent():
		return

	case v.IsObject():
		obj := v.Object()
		if isSimpleObject(obj) {
			w.add(path, key, formatSimpleObject(obj), false)
			return
		}
		w.walkObject(obj, path, depth+1)

	case v.IsArray():
		w.add(path, key, formatArray(key, v.Array()), true)

	default:
		w.add(path, key, formatPrimitive(key, v), false)
	}
}

func (w *walker) add(path, key, value string, isArray bool) {
	inline := !isArray && utf8.RuneCountInString(value) <= inlineMaxLength && IsInlineKey(key)

	name := textlimit.FormatForField(prettifyPath(path), textlimit.FieldName)
	if name == "" {
		name = emptyPlaceholder
	}

	if isArray {
		value = textlimit.TruncateDefault(value, int(textlimit.FieldValue))
	} else {
		value = textlimit.FormatForField(value, textlimit.FieldValue)
	}
	if strings.TrimSpace(value) == "" {
		value = emptyPlaceholder
	}

	w.fields = append(w.fields, model.CardField{Name: name, Value: value, Inline: inline})
}

// orderedKeys lists priority keys first, each group in source order.
func orderedKeys(obj *jsontree.Object) []string {
	keys := obj.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if priorityKeys[k] {
			out = append(out, k)
		}
	}
	for _, k := range keys {
		if !priorityKeys[k] {
			out = append(out, k)
		}
	}
	return out
}

// isSimpleObject reports whether obj is small enough to render on one line.
func isSimpleObject(obj *jsontree.Object) bool {
	if obj.Len() > simpleObjectMaxKeys {
		return false
	}
	for _, k := range obj.Keys() {
		if !obj.Field(k).IsPrimitive() {
			return false
		}
	}
	return true
}

func formatSimpleObject(obj *jsontree.Object) string {
	keys := obj.Keys()
	if len(keys) == 0 {
		return "Empty"
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, PrettifyKey(k)+": "+formatPrimitive(k, obj.Field(k)))
	}
	return strings.Join(parts, ", ")
}

func formatArray(key string, items []jsontree.Value) string {
	if len(items) == 0 {
		return "Empty"
	}

	shown := items
	if len(shown) > genericMaxArrayItems {
		shown = shown[:genericMaxArrayItems]
	}

	lines := make([]string, 0, len(shown)+1)
	for _, item := range shown {
		lines = append(lines, textlimit.Sanitize(formatArrayItem(key, item)))
	}
	if rest := len(items) - len(shown); rest > 0 {
		lines = append(lines, fmt.Sprintf("... and %d more", rest))
	}
	return strings.Join(lines, "\n")
}

func formatArrayItem(key string, item jsontree.Value) string {
	switch {
	case item.IsAbsent():
		return "null"
	case item.IsObject():
		if obj := item.Object(); isSimpleObject(obj) {
			return formatSimpleObject(obj)
		}
		return "[Object]"
	case item.IsArray():
		return fmt.Sprintf("[%d items]", len(item.Array()))
	}
	return formatPrimitive(key, item)
}

// formatPrimitive renders a scalar using hints from its key name.
func formatPrimitive(key string, v jsontree.Value) string {
	if b, ok := v.Bool(); ok {
		if b {
			return "✅ Yes"
		}
		return "❌ No"
	}

	if s, isString := v.Str(), v.IsString(); isString {
		if IsURLKey(key) {
			if u := textlimit.ValidateURL(s); u != "" {
				return "[Link](" + u + ")"
			}
			return s
		}
		if IsDateKey(key) && datemath.IsTeamCityTimestamp(s) {
			if t, ok := datemath.ParseTeamCity(s); ok {
				return datemath.FormatHuman(t)
			}
			return s
		}
	}

	return v.String()
}
