package datemath_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"teamcity-notifier/pkg/datemath"
)

func TestParseTeamCity(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "Negative offset",
			input:  "20250812T000012-0300",
			want:   time.Date(2025, 8, 12, 3, 0, 12, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "Positive offset",
			input:  "20240229T235959+0530",
			want:   time.Date(2024, 2, 29, 18, 29, 59, 0, time.UTC),
			wantOK: true,
		},
		{name: "Feb 30", input: "20250230T120000+0000"},
		{name: "Feb 29 non leap", input: "20250229T120000+0000"},
		{name: "Month 13", input: "20251301T120000+0000"},
		{name: "Month 0", input: "20250001T120000+0000"},
		{name: "Day 0", input: "20250100T120000+0000"},
		{name: "Day 32", input: "20250132T120000+0000"},
		{name: "Hour 24", input: "20250101T240000+0000"},
		{name: "Minute 60", input: "20250101T236000+0000"},
		{name: "Second 60", input: "20250101T235960+0000"},
		{name: "ISO format", input: "2025-08-12T00:00:12-03:00"},
		{name: "Missing offset", input: "20250812T000012"},
		{name: "Trailing garbage", input: "20250812T000012-0300Z"},
		{name: "Empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := datemath.ParseTeamCity(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseTeamCity(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseTeamCity(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTeamCityRoundTrip(t *testing.T) {
	for year := 1999; year <= 2031; year += 4 {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 15, 28} {
				in := fmt.Sprintf("%04d%02d%02dT%02d%02d%02d-0700", year, month, day, (day*7)%24, (month*5)%60, (year*3)%60)
				got, ok := datemath.ParseTeamCity(in)
				if !ok {
					t.Fatalf("ParseTeamCity(%q) failed", in)
				}
				if got.Year() != year || int(got.Month()) != month || got.Day() != day {
					t.Fatalf("ParseTeamCity(%q) read back %v", in, got)
				}
			}
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	got := datemath.FormatTimestamp("20250812T003411-0300")
	for _, want := range []string{"2025", "Aug", "12", "00:34:11"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatTimestamp() = %q, missing %q", got, want)
		}
	}

	if got := datemath.FormatTimestamp("not a date"); got != datemath.InvalidDate {
		t.Errorf("FormatTimestamp(invalid) = %q, want %q", got, datemath.InvalidDate)
	}
}

func TestIsTeamCityTimestamp(t *testing.T) {
	if !datemath.IsTeamCityTimestamp("20250230T120000+0000") {
		t.Error("shape check should not validate the calendar")
	}
	if datemath.IsTeamCityTimestamp("yesterday") {
		t.Error("free text matched the timestamp pattern")
	}
}
