package model

import (
	"strings"
	"testing"
)

func TestSummaryOf_StripsStructureAndNewlines(t *testing.T) {
	content := "### 🔴 Current picture\n**Strikes** continue overnight."
	got := SummaryOf(content)

	if strings.ContainsAny(got, "#*\n") {
		t.Errorf("Expected structure characters removed, got %q", got)
	}
	if !strings.Contains(got, "Strikes continue overnight.") {
		t.Errorf("Expected body text preserved, got %q", got)
	}
	if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
		t.Errorf("Expected trimmed summary, got %q", got)
	}
}

func TestSummaryOf_TruncatesTo150Runes(t *testing.T) {
	content := strings.Repeat("a", 400)
	got := SummaryOf(content)

	if len([]rune(got)) != 150 {
		t.Errorf("Expected 150-rune summary, got %d", len([]rune(got)))
	}
}

func TestSummaryOf_PureFunctionOfContent(t *testing.T) {
	content := "### events\nשורה תחתונה: ✅ מאומת"
	if SummaryOf(content) != SummaryOf(content) {
		t.Error("Expected identical summaries for identical content")
	}
}

func TestHistory_Latest(t *testing.T) {
	var empty History
	if _, ok := empty.Latest(); ok {
		t.Error("Expected no latest record for empty history")
	}

	h := History{{Timestamp: 20}, {Timestamp: 10}}
	rec, ok := h.Latest()
	if !ok || rec.Timestamp != 20 {
		t.Errorf("Expected newest record at index 0, got %+v", rec)
	}
}

func TestHistory_Recent(t *testing.T) {
	h := History{{Timestamp: 30}, {Timestamp: 20}, {Timestamp: 10}}

	if got := h.Recent(2); len(got) != 2 || got[0].Timestamp != 30 {
		t.Errorf("Expected 2 newest records, got %+v", got)
	}
	if got := h.Recent(9); len(got) != 3 {
		t.Errorf("Expected clamp to history length, got %d", len(got))
	}
	if got := h.Recent(-1); len(got) != 0 {
		t.Errorf("Expected empty slice for negative k, got %d", len(got))
	}
}

func TestApplyProfile(t *testing.T) {
	cfg := DefaultConfig().Context

	cfg.ApplyProfile("extended")
	if cfg.PrevRecords != 3 || cfg.PrevChars != 1500 {
		t.Errorf("Expected extended budget, got %d records / %d chars", cfg.PrevRecords, cfg.PrevChars)
	}

	cfg.ApplyProfile("compact")
	if cfg.PrevRecords != 1 || cfg.PrevChars != 600 {
		t.Errorf("Expected compact budget, got %d records / %d chars", cfg.PrevRecords, cfg.PrevChars)
	}

	cfg.ApplyProfile("unknown")
	if cfg.PrevRecords != 1 || cfg.PrevChars != 600 {
		t.Error("Expected unknown profile to leave budgets untouched")
	}
}
