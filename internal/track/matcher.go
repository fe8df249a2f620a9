// Package track maintains per-source reliability scores by scanning
// briefing text for known source names and nearby reliability markers.
package track

import (
	"strings"

	"sitrep/internal/model"
)

// Detection reports the first occurrence of a known source in a content
// body.
type Detection struct {
	// Source is the canonical registry name
	Source string

	// Alias is the surface form that matched
	Alias string

	// Index is the byte offset of the first occurrence, measured on the
	// case-folded text
	Index int
}

// Matcher locates known sources in free text. Substring matching is the
// default; the interface exists so a tokenization-aware matcher can slot
// in without touching the scoring logic.
type Matcher interface {
	Detect(content string) []Detection
}

// SubstringMatcher performs case-insensitive literal alias matching over
// an ordered registry. For each source, aliases are tried in registry
// order and the first hit wins - later aliases are not counted even if
// they also appear.
type SubstringMatcher struct {
	sources []model.SourceSpec
}

// NewSubstringMatcher creates a matcher over the given registry.
func NewSubstringMatcher(sources []model.SourceSpec) *SubstringMatcher {
	return &SubstringMatcher{sources: sources}
}

// Detect returns at most one detection per registered source, in registry
// order.
func (m *SubstringMatcher) Detect(content string) []Detection {
	lower := strings.ToLower(content)
	var found []Detection
	for _, src := range m.sources {
		for _, alias := range src.Aliases {
			idx := strings.Index(lower, strings.ToLower(alias))
			if idx < 0 {
				continue
			}
			found = append(found, Detection{
				Source: src.Name,
				Alias:  alias,
				Index:  idx,
			})
			break
		}
	}
	return found
}
