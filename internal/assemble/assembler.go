// Package assemble composes the bounded context document handed to the
// generation backend each cycle.
package assemble

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"sitrep/internal/model"
)

// Assembler renders the context bundle: instructional template plus up to
// four optional blocks (user intel, feedback, source reliability, prior
// output). Pure - same inputs and clock yield the same document.
type Assembler struct {
	cfg model.ContextConfig
}

// New creates an assembler with the given context configuration.
func New(cfg model.ContextConfig) *Assembler {
	return &Assembler{cfg: cfg}
}

// timeFormat is the display timestamp layout used across the system.
const timeFormat = "02/01/2006 15:04:05"

// Assemble composes the context document. Empty collections omit their
// block entirely; block order is fixed. The clock feeds only the displayed
// timestamp, never a decision.
func (a *Assembler) Assemble(h model.History, sources map[string]model.SourceProfile, intel []model.UserIntelItem, feedback []model.FeedbackItem, now time.Time) string {
	timeStr := now.In(a.cfg.Location()).Format(timeFormat)

	var b strings.Builder
	b.WriteString(strings.ReplaceAll(a.cfg.Template, "{time}", timeStr))

	if len(intel) > 0 {
		b.WriteString("\n\n## Direct-source intel (top priority - supplied by the user):\n")
		for _, item := range intel {
			fmt.Fprintf(&b, "- [%s] %s (%s)\n", item.Priority, item.Text, item.Time)
		}
	}

	if len(feedback) > 0 {
		recent := feedback
		if len(recent) > a.cfg.FeedbackWindow {
			recent = recent[len(recent)-a.cfg.FeedbackWindow:]
		}
		b.WriteString("\n\n## User feedback - learn from this:\n")
		for _, fb := range recent {
			fmt.Fprintf(&b, "- %s (%s)\n", fb.Text, fb.Time)
		}
	}

	if len(sources) > 0 {
		b.WriteString("\n\n## Source reliability history:\n")
		for _, name := range sortedByScore(sources) {
			p := sources[name]
			fmt.Fprintf(&b, "- %s: score %d/100 (mentions: %d)\n", name, p.Score, p.Mentions)
		}
	}

	if recent := h.Recent(a.cfg.PrevRecords); len(recent) > 0 {
		b.WriteString("\n## Previous briefings (context and comparison):\n")
		for _, rec := range recent {
			fmt.Fprintf(&b, "--- previous briefing (%s) ---\n%s\n", rec.TimeStr, truncateRunes(rec.Content, a.cfg.PrevChars))
		}
	}

	return b.String()
}

// sortedByScore orders source names by score descending, ties by name
// ascending, so the most-trusted sources sit first under a length budget.
func sortedByScore(sources map[string]model.SourceProfile) []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := sources[names[i]].Score, sources[names[j]].Score
		if si != sj {
			return si > sj
		}
		return names[i] < names[j]
	})
	return names
}

// truncateRunes hard-cuts s to at most n runes. Not word-aware.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
