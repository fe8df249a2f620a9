package pipeline

import "strings"

// StripPreamble discards everything before the first occurrence of the
// section-start marker. Generation backends occasionally prepend
// conversational filler before the briefing proper; the marker anchors
// where real content begins. Idempotent: text already starting at the
// marker, or containing no marker at all, passes through unchanged.
func StripPreamble(text, marker string) string {
	if marker == "" {
		return text
	}
	if idx := strings.Index(text, marker); idx > 0 {
		return text[idx:]
	}
	return text
}
