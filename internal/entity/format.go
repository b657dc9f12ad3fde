package entity

import (
	"strconv"
	"time"
)

// Placeholder is rendered for absent optional fields and dangling
// relations. Dangling references are tolerated, never an error.
const Placeholder = "N/A"

// longTextMarker is rendered in place of long free-text fields; the full
// text is only shown in a detail view, as plain text.
const longTextMarker = "view"

// timestampLayouts are tried in order when rendering backend timestamps.
// The backend emits ISO-8601, with or without a zone, sometimes date-only.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDateTime renders a backend timestamp for display. Absent values
// render as the placeholder, unparsable ones as "Invalid Date"; this never
// fails harder than that.
func FormatDateTime(s string) string {
	if s == "" {
		return Placeholder
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Local().Format("2006-01-02 15:04:05")
		}
	}
	return "Invalid Date"
}

// OrNA renders an optional string field.
func OrNA(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}

// IDOrNA renders an optional relation id.
func IDOrNA(id *int64) string {
	if id == nil {
		return Placeholder
	}
	return strconv.FormatInt(*id, 10)
}

// LongText renders the marker for a free-text field, or the placeholder
// when there is nothing to view.
func LongText(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return longTextMarker
}
