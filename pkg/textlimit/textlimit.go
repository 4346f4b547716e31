// Package textlimit keeps strings inside the size limits Discord enforces on
// embeds and strips characters that break embed rendering.
package textlimit

import (
	"net/url"
	"strings"
)

// Limit is a maximum length in characters.
type Limit int

// Discord embed limits.
const (
	Title       Limit = 256
	Description Limit = 4096
	FieldName   Limit = 256
	FieldValue  Limit = 1024
	Footer      Limit = 2048
)

// DefaultSuffix is appended to truncated text.
const DefaultSuffix = "..."

// Truncate returns text unchanged when it fits in maxLength characters.
// Otherwise it keeps the first maxLength-len(suffix) characters and appends
// suffix. The result never exceeds maxLength characters.
func Truncate(text string, maxLength int, suffix string) string {
	if maxLength <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	suffixRunes := []rune(suffix)
	keep := maxLength - len(suffixRunes)
	if keep < 0 {
		return string(suffixRunes[:maxLength])
	}
	return string(runes[:keep]) + suffix
}

// TruncateDefault truncates with DefaultSuffix.
func TruncateDefault(text string, maxLength int) string {
	return Truncate(text, maxLength, DefaultSuffix)
}

// Sanitize replaces ASCII control characters with spaces, collapses runs of
// whitespace into a single space and trims the result.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.Map(replaceControl, text)), " ")
}

// FormatForField sanitizes text and truncates it to limit.
func FormatForField(text string, limit Limit) string {
	return TruncateDefault(Sanitize(text), int(limit))
}

// ValidateURL returns the trimmed url when it is usable as a link target.
// Strings that are not http(s) URLs are treated as relative references and
// returned as is; malformed absolute URLs yield "".
func ValidateURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return trimmed
}

var markupReplacer = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"~", `\~`,
	"|", `\|`,
)

// EscapeMarkup escapes Discord markdown characters and normalizes whitespace.
func EscapeMarkup(text string) string {
	if text == "" {
		return ""
	}
	return Sanitize(markupReplacer.Replace(text))
}

func replaceControl(r rune) rune {
	switch {
	case r <= 0x08, r == 0x0B, r == 0x0C, r >= 0x0E && r <= 0x1F, r == 0x7F:
		return ' '
	}
	return r
}
