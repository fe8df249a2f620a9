package track

import (
	"strings"

	"sitrep/internal/model"
)

// Tracker adjusts source reliability scores from one cycle's briefing
// content. Scores live in [0,100]; new profiles start at 50.
type Tracker struct {
	matcher Matcher
	cfg     model.TrackerConfig
}

// New creates a tracker. A nil matcher gets the default substring matcher
// over the configured registry.
func New(cfg model.TrackerConfig, matcher Matcher) *Tracker {
	if matcher == nil {
		matcher = NewSubstringMatcher(cfg.Sources)
	}
	return &Tracker{matcher: matcher, cfg: cfg}
}

// Update scans content for registered sources and adjusts their profiles.
// Per cycle each detected source gains exactly one mention, regardless of
// how often its aliases appear, and each marker tier found in the window
// around the first occurrence applies its delta once. Sources not seen are
// left untouched. The updated mapping is returned for the caller to
// persist.
func (t *Tracker) Update(content string, profiles map[string]model.SourceProfile) map[string]model.SourceProfile {
	if profiles == nil {
		profiles = map[string]model.SourceProfile{}
	}

	for _, d := range t.matcher.Detect(content) {
		p, ok := profiles[d.Source]
		if !ok {
			p = model.SourceProfile{Score: 50, Mentions: 0}
		}
		p.Mentions++

		window := contextWindow(content, d.Index, len(d.Alias), t.cfg.WindowBefore, t.cfg.WindowAfter)
		for _, tier := range []model.MarkerTier{t.cfg.Confirmed, t.cfg.Rumor, t.cfg.SingleSource} {
			if containsAny(window, tier.Markers) {
				p.Score = clampScore(p.Score + tier.Delta)
			}
		}

		profiles[d.Source] = p
	}
	return profiles
}

// contextWindow slices the text span inspected for reliability markers:
// before bytes ahead of the match start through after bytes past the match
// end, clamped to the content bounds.
func contextWindow(content string, idx, matchLen, before, after int) string {
	start := idx - before
	if start < 0 {
		start = 0
	}
	end := idx + matchLen + after
	if end > len(content) {
		end = len(content)
	}
	if start > len(content) {
		start = len(content)
	}
	return content[start:end]
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
