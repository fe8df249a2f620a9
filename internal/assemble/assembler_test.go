package assemble

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"sitrep/internal/model"
)

func testContextConfig() model.ContextConfig {
	cfg := model.DefaultConfig().Context
	cfg.Template = "INSTRUCTIONS {time}"
	return cfg
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC)
}

func TestAssemble_TemplateAndTimestamp(t *testing.T) {
	a := New(testContextConfig())

	got := a.Assemble(nil, nil, nil, nil, fixedNow())

	// UTC 09:30 displays as 12:30 in the configured +3 zone
	if !strings.HasPrefix(got, "INSTRUCTIONS 25/08/2026 12:30:00") {
		t.Errorf("Expected template with display timestamp, got %q", got)
	}
}

func TestAssemble_EmptyCollectionsOmitBlocks(t *testing.T) {
	a := New(testContextConfig())

	got := a.Assemble(nil, nil, nil, nil, fixedNow())

	for _, heading := range []string{"Direct-source intel", "User feedback", "Source reliability", "Previous briefings"} {
		if strings.Contains(got, heading) {
			t.Errorf("Expected %q block omitted for empty input", heading)
		}
	}
}

func TestAssemble_PriorOutputBlock(t *testing.T) {
	cfg := testContextConfig()
	cfg.PrevRecords = 1
	cfg.PrevChars = 10
	a := New(cfg)

	h := model.History{
		{TimeStr: "25/08/2026 11:00:00", Content: "0123456789 this tail must be cut"},
		{TimeStr: "25/08/2026 10:00:00", Content: "older record"},
	}
	got := a.Assemble(h, nil, nil, nil, fixedNow())

	if !strings.Contains(got, "--- previous briefing (25/08/2026 11:00:00) ---\n0123456789\n") {
		t.Errorf("Expected newest record truncated to 10 runes, got:\n%s", got)
	}
	if strings.Contains(got, "older record") {
		t.Error("Expected only the newest record with PrevRecords=1")
	}
}

func TestAssemble_TruncationIsRuneAware(t *testing.T) {
	cfg := testContextConfig()
	cfg.PrevRecords = 1
	cfg.PrevChars = 5
	a := New(cfg)

	h := model.History{{TimeStr: "t", Content: "שלום עולם"}}
	got := a.Assemble(h, nil, nil, nil, fixedNow())

	if !strings.Contains(got, "שלום ") {
		t.Error("Expected 5-rune prefix of Hebrew content")
	}
	if strings.Contains(got, "עולם") {
		t.Error("Expected truncation after 5 runes")
	}
}

func TestAssemble_ExtendedProfileTakesThreeRecords(t *testing.T) {
	cfg := testContextConfig()
	cfg.ApplyProfile("extended")
	a := New(cfg)

	h := model.History{
		{TimeStr: "t1", Content: "one"},
		{TimeStr: "t2", Content: "two"},
		{TimeStr: "t3", Content: "three"},
		{TimeStr: "t4", Content: "four"},
	}
	got := a.Assemble(h, nil, nil, nil, fixedNow())

	for _, want := range []string{"(t1)", "(t2)", "(t3)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected record %s in prior-output block", want)
		}
	}
	if strings.Contains(got, "(t4)") {
		t.Error("Expected only the newest 3 records in extended profile")
	}
}

func TestAssemble_IntelBlock(t *testing.T) {
	a := New(testContextConfig())

	intel := []model.UserIntelItem{
		{Text: "first fact", Priority: "normal", Time: "t1"},
		{Text: "second fact", Priority: "high", Time: "t2"},
	}
	got := a.Assemble(nil, nil, intel, nil, fixedNow())

	first := strings.Index(got, "- [normal] first fact (t1)")
	second := strings.Index(got, "- [high] second fact (t2)")
	if first < 0 || second < 0 {
		t.Fatalf("Expected both intel lines, got:\n%s", got)
	}
	if first > second {
		t.Error("Expected intel items in storage order")
	}
}

func TestAssemble_FeedbackWindow(t *testing.T) {
	cfg := testContextConfig()
	cfg.FeedbackWindow = 10
	a := New(cfg)

	var feedback []model.FeedbackItem
	for i := 0; i < 15; i++ {
		feedback = append(feedback, model.FeedbackItem{Text: fmt.Sprintf("fb%d", i), Time: "t"})
	}
	got := a.Assemble(nil, nil, nil, feedback, fixedNow())

	if strings.Contains(got, "- fb4 (t)") {
		t.Error("Expected items before the trailing window dropped")
	}
	for i := 5; i < 15; i++ {
		if !strings.Contains(got, fmt.Sprintf("- fb%d (t)", i)) {
			t.Errorf("Expected trailing item fb%d in feedback block", i)
		}
	}
}

func TestAssemble_SourcesSortedByScoreDescending(t *testing.T) {
	a := New(testContextConfig())

	sources := map[string]model.SourceProfile{
		"Reuters": {Score: 62, Mentions: 12},
		"BBC":     {Score: 41, Mentions: 8},
		"ISW":     {Score: 62, Mentions: 3},
		"CNN":     {Score: 77, Mentions: 2},
	}
	got := a.Assemble(nil, sources, nil, nil, fixedNow())

	idx := func(name string) int {
		return strings.Index(got, "- "+name+":")
	}
	// CNN (77), then the 62 tie broken by name (ISW before Reuters), then BBC
	order := []string{"CNN", "ISW", "Reuters", "BBC"}
	for i := 0; i < len(order)-1; i++ {
		if idx(order[i]) < 0 || idx(order[i]) > idx(order[i+1]) {
			t.Fatalf("Expected order %v in source block, got:\n%s", order, got)
		}
	}
	if !strings.Contains(got, "- Reuters: score 62/100 (mentions: 12)") {
		t.Error("Expected score and mention count per source line")
	}
}

func TestAssemble_Pure(t *testing.T) {
	a := New(testContextConfig())

	h := model.History{{TimeStr: "t", Content: "stable"}}
	sources := map[string]model.SourceProfile{"Reuters": {Score: 55, Mentions: 1}}

	first := a.Assemble(h, sources, nil, nil, fixedNow())
	second := a.Assemble(h, sources, nil, nil, fixedNow())
	if first != second {
		t.Error("Expected identical output for identical inputs and clock")
	}
}
