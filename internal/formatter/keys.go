package formatter

import (
	"strings"
	"unicode"
)

var inlineKeywords = []string{"id", "number", "status", "state", "name", "username", "count"}

// IsURLKey reports whether a payload key names a link.
func IsURLKey(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "url") || strings.Contains(k, "href")
}

// IsDateKey reports whether a payload key may hold a timestamp.
func IsDateKey(key string) bool {
	k := strings.ToLower(key)
	return strings.Contains(k, "date") || strings.Contains(k, "time")
}

// IsInlineKey reports whether a short value under key fits an inline field.
func IsInlineKey(key string) bool {
	k := strings.ToLower(key)
	for _, kw := range inlineKeywords {
		if strings.Contains(k, kw) {
			return true
		}
	}
	return false
}

// PrettifyKey turns "buildTypeId" or "build_type-id" into "Build Type Id".
func PrettifyKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case r == '-' || r == '_':
			b.WriteRune(' ')
		case i > 0 && unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// prettifyPath prettifies each segment of a dotted path.
func prettifyPath(path string) string {
	segments := strings.Split(path, ".")
	for i, s := range segments {
		segments[i] = PrettifyKey(s)
	}
	return strings.Join(segments, " › ")
}
