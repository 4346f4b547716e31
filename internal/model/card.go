package model

import "time"

// MaxCardFields is Discord's hard cap on embed fields.
const MaxCardFields = 25

// Card is a rendered notification, delivered as a Discord embed.
type Card struct {
	Title     string      `json:"title"`
	Color     int         `json:"color"`
	Timestamp time.Time   `json:"timestamp"`
	Footer    string      `json:"footer"`
	Fields    []CardField `json:"fields"`
}

type CardField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// AddField appends a field unless the card is already full. It reports
// whether the field was added.
func (c *Card) AddField(name, value string, inline bool) bool {
	if len(c.Fields) >= MaxCardFields {
		return false
	}
	c.Fields = append(c.Fields, CardField{Name: name, Value: value, Inline: inline})
	return true
}

// Field returns the first field with the given name.
func (c Card) Field(name string) (CardField, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return CardField{}, false
}

// IsEmpty reports whether the card has nothing worth sending.
func (c Card) IsEmpty() bool {
	return c.Title == "" && len(c.Fields) == 0
}
