package pipeline

import "testing"

func TestStripPreamble(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		marker string
		want   string
	}{
		{
			name:   "filler before first section is discarded",
			text:   "Sure, here is the briefing you asked for.\n\n### 🔴 Current picture\nStrikes continue.",
			marker: "### ",
			want:   "### 🔴 Current picture\nStrikes continue.",
		},
		{
			name:   "text already at marker is untouched",
			text:   "### 🔴 Current picture\nStrikes continue.",
			marker: "### ",
			want:   "### 🔴 Current picture\nStrikes continue.",
		},
		{
			name:   "no marker leaves text unchanged",
			text:   "plain text without sections",
			marker: "### ",
			want:   "plain text without sections",
		},
		{
			name:   "empty marker disables stripping",
			text:   "preamble ### section",
			marker: "",
			want:   "preamble ### section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripPreamble(tt.text, tt.marker); got != tt.want {
				t.Errorf("StripPreamble() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripPreamble_Idempotent(t *testing.T) {
	text := "I'll scan now.\n### 🔥 Hot developments\nDetails."
	once := StripPreamble(text, "### ")
	twice := StripPreamble(once, "### ")
	if once != twice {
		t.Errorf("Expected idempotent stripping, got %q then %q", once, twice)
	}
}
