package model

import "strings"

// ScanRecord is one produced briefing. Records are immutable once created;
// the retention policy decides which survive into the next cycle.
type ScanRecord struct {
	Timestamp int64  `json:"timestamp"` // epoch seconds, non-decreasing across records
	TimeStr   string `json:"time_str"`  // display-only local timestamp
	Content   string `json:"content"`   // full briefing body, authoritative payload
	Summary   string `json:"summary"`   // derived excerpt, always recomputed from Content
	ModelID   string `json:"model_id"`  // generation backend identifier, informational
}

// SourceProfile is the reliability state for one named information source.
// Score stays in [0,100]; Mentions never decreases. Profiles are never
// deleted - they form an append-only reputation ledger.
type SourceProfile struct {
	Score    int `json:"score"`
	Mentions int `json:"mentions"`
}

// UserIntelItem is a manually supplied fact injected with elevated priority.
type UserIntelItem struct {
	Text     string `json:"text"`
	Priority string `json:"priority"` // "normal" or "high"
	Time     string `json:"time"`
}

// FeedbackItem is a free-text correction from the user. Append-only; only
// the most recent window is fed back into context assembly.
type FeedbackItem struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

// summaryRunes is the excerpt length for derived summaries.
const summaryRunes = 150

// SummaryOf derives a ScanRecord summary from its content: a fixed rune
// prefix with markdown structure characters removed and newlines collapsed
// to spaces. Pure function of content.
func SummaryOf(content string) string {
	runes := []rune(content)
	if len(runes) > summaryRunes {
		runes = runes[:summaryRunes]
	}
	s := string(runes)
	s = strings.ReplaceAll(s, "#", "")
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
