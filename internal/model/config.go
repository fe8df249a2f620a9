package model

import "time"

// Config holds the complete sitrep configuration. Everything that shapes a
// cycle - registries, marker tiers, budgets, template text - lives here so
// components receive explicit configuration instead of package globals.
type Config struct {
	// DataDir is where the five state documents live
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`

	Generation GenerationConfig `yaml:"generation" mapstructure:"generation"`
	Retention  RetentionConfig  `yaml:"retention" mapstructure:"retention"`
	Context    ContextConfig    `yaml:"context" mapstructure:"context"`
	Tracker    TrackerConfig    `yaml:"tracker" mapstructure:"tracker"`
}

// GenerationConfig configures the generation backend boundary.
type GenerationConfig struct {
	// Provider name: "anthropic" (default), "openai", "ollama"
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey is normally supplied via environment, never the config file
	APIKey string `yaml:"-" mapstructure:"-"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Timeout for API requests, seconds
	Timeout int `yaml:"timeout" mapstructure:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`

	// MaxLookups is the web-lookup allowance handed to the backend
	MaxLookups int `yaml:"max_lookups" mapstructure:"max_lookups"`

	// MaxRetries on rate limiting before the error propagates
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`

	// BackoffSeconds is the base of the linear backoff (base * attempt)
	BackoffSeconds int `yaml:"backoff_seconds" mapstructure:"backoff_seconds"`

	// PaceSeconds is the minimum spacing between generation calls
	// (matters in watch mode; a single scan never waits)
	PaceSeconds int `yaml:"pace_seconds" mapstructure:"pace_seconds"`
}

// Retention modes.
const (
	RetentionBounded = "bounded"
	RetentionSparse  = "sparse"
)

// RetentionConfig configures the history retention policy.
type RetentionConfig struct {
	// Mode: "bounded" (keep Cap newest) or "sparse" (newest + spread picks)
	Mode string `yaml:"mode" mapstructure:"mode"`

	// Cap is the bounded-mode record limit
	Cap int `yaml:"cap" mapstructure:"cap"`

	// StrideDivisor controls the sparse-mode pick spacing
	StrideDivisor int `yaml:"stride_divisor" mapstructure:"stride_divisor"`
}

// ContextConfig configures the context assembler and post-processing.
type ContextConfig struct {
	// Profile: "compact" (1 record, tight budget) or "extended" (3 records)
	Profile string `yaml:"profile" mapstructure:"profile"`

	// PrevRecords is how many history records feed the prior-output block
	PrevRecords int `yaml:"prev_records" mapstructure:"prev_records"`

	// PrevChars is the per-record rune budget for prior-output excerpts
	PrevChars int `yaml:"prev_chars" mapstructure:"prev_chars"`

	// FeedbackWindow is the trailing number of feedback items included
	FeedbackWindow int `yaml:"feedback_window" mapstructure:"feedback_window"`

	// Template is the instructional text; "{time}" is replaced with the
	// current display timestamp
	Template string `yaml:"template" mapstructure:"template"`

	// TaskPrompt is the short task text sent alongside the context bundle
	TaskPrompt string `yaml:"task_prompt" mapstructure:"task_prompt"`

	// SectionMarker starts the first real briefing section; generated text
	// before its first occurrence is discarded
	SectionMarker string `yaml:"section_marker" mapstructure:"section_marker"`

	// UTCOffsetHours fixes the display timezone
	UTCOffsetHours int `yaml:"utc_offset_hours" mapstructure:"utc_offset_hours"`
}

// Location returns the fixed display timezone.
func (c ContextConfig) Location() *time.Location {
	return time.FixedZone("local", c.UTCOffsetHours*3600)
}

// SourceSpec names one registered source and its surface-form aliases.
// Slice order is priority order: earlier sources and earlier aliases win
// when aliases overlap, which keeps attribution deterministic.
type SourceSpec struct {
	Name    string   `yaml:"name" mapstructure:"name"`
	Aliases []string `yaml:"aliases" mapstructure:"aliases"`
}

// MarkerTier is one reliability-marker tier: the glyphs/phrases that
// identify it and the score delta it applies.
type MarkerTier struct {
	Markers []string `yaml:"markers" mapstructure:"markers"`
	Delta   int      `yaml:"delta" mapstructure:"delta"`
}

// TrackerConfig configures the source reliability tracker.
type TrackerConfig struct {
	// Sources is the ordered registry of known sources
	Sources []SourceSpec `yaml:"sources" mapstructure:"sources"`

	// Marker tiers; all tiers present in a window apply
	Confirmed    MarkerTier `yaml:"confirmed" mapstructure:"confirmed"`
	Rumor        MarkerTier `yaml:"rumor" mapstructure:"rumor"`
	SingleSource MarkerTier `yaml:"single_source" mapstructure:"single_source"`

	// Window span, bytes before match start / after match end
	WindowBefore int `yaml:"window_before" mapstructure:"window_before"`
	WindowAfter  int `yaml:"window_after" mapstructure:"window_after"`
}

// defaultTemplate instructs the backend to write a terse sectioned briefing
// and to annotate claims with the reliability glyphs the tracker scores on.
const defaultTemplate = `You are a senior intelligence editor. Your job: write a short, sharp operational briefing with bottom lines only.

Time: {time}

## The central rule:
You are not a journalist copying everything. You are an analyst giving the bottom line.
No bullet points. Write short paragraphs of continuous text.
Name sources inline (e.g., "According to Reuters..." or "Times of Israel reported that...").
No politician quotes unless a statement changes the situation on the ground.
Next to key information mark ✅ confirmed | ⚠️ single source | ❓ rumor.
Each section = 2-4 sentences maximum.
Do not write banners or preambles. Start directly with the first heading.

## Required structure (write exactly these headings):

### 🔴 Current operational picture
4-5 sentence summary of the situation so far. Bottom line only.

### 🔥 Hot developments
What is new and significant in the last hour or two. 3-4 short paragraphs. If nothing is new, say "no significant change".

### 📊 Scenario - next hour
One paragraph: the most likely immediate development.

### 📈 Scenario - trajectory
2-3 paragraphs: where this is heading over the coming days and weeks.

### Key sources
One line: the 3-5 main sources used.

## Search in all languages: English, Arabic, Persian, Hebrew`

// defaultTaskPrompt is the short per-cycle instruction.
const defaultTaskPrompt = `Operational briefing. What is the situation right now?

Search for the very latest news. Give numbers. Be short and sharp - essentials only.`

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir: "data",
		Generation: GenerationConfig{
			Provider:       "anthropic",
			Model:          "claude-sonnet-4-20250514",
			Timeout:        300,
			MaxTokens:      4000,
			MaxLookups:     15,
			MaxRetries:     3,
			BackoffSeconds: 60,
			PaceSeconds:    60,
		},
		Retention: RetentionConfig{
			Mode:          RetentionBounded,
			Cap:           50,
			StrideDivisor: 2,
		},
		Context: ContextConfig{
			Profile:        "compact",
			PrevRecords:    1,
			PrevChars:      600,
			FeedbackWindow: 10,
			Template:       defaultTemplate,
			TaskPrompt:     defaultTaskPrompt,
			SectionMarker:  "### ",
			UTCOffsetHours: 3,
		},
		Tracker: DefaultTrackerConfig(),
	}
}

// ApplyProfile adjusts the prior-output budget for a named operating
// profile. Unknown names leave the explicit settings untouched.
func (c *ContextConfig) ApplyProfile(name string) {
	switch name {
	case "compact":
		c.PrevRecords = 1
		c.PrevChars = 600
	case "extended":
		c.PrevRecords = 3
		c.PrevChars = 1500
	}
	c.Profile = name
}

// DefaultTrackerConfig returns the built-in source registry and marker
// tiers. More specific aliases precede the sources whose aliases they
// could shadow.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		Sources: []SourceSpec{
			{Name: "ISW", Aliases: []string{"ISW", "Institute for the Study of War"}},
			{Name: "Jane's", Aliases: []string{"Jane's", "Janes"}},
			{Name: "IRNA", Aliases: []string{"IRNA"}},
			{Name: "Fars News", Aliases: []string{"Fars News"}},
			{Name: "Tasnim", Aliases: []string{"Tasnim"}},
			{Name: "Press TV", Aliases: []string{"Press TV"}},
			{Name: "Al Arabiya", Aliases: []string{"Al Arabiya"}},
			{Name: "Al Jazeera", Aliases: []string{"Al Jazeera"}},
			{Name: "Reuters", Aliases: []string{"Reuters"}},
			{Name: "AP", Aliases: []string{"Associated Press", " AP "}},
			{Name: "Epoch Times", Aliases: []string{"Epoch Times"}},
			{Name: "Times of Israel", Aliases: []string{"Times of Israel"}},
			{Name: "Jerusalem Post", Aliases: []string{"Jerusalem Post"}},
			{Name: "i24", Aliases: []string{"i24"}},
			{Name: "Ynet", Aliases: []string{"Ynet", "ynetnews"}},
			{Name: "Walla", Aliases: []string{"Walla", "וואלה"}},
			{Name: "Kan News", Aliases: []string{"כאן חדשות", "Kan News", "כאן 11"}},
			{Name: "Channel 12", Aliases: []string{"חדשות 12", "Channel 12"}},
			{Name: "Channel 13", Aliases: []string{"חדשות 13", "Channel 13"}},
			{Name: "OSINT Analysts", Aliases: []string{"OSINT"}},
			{Name: "Telegram", Aliases: []string{"טלגרם", "Telegram"}},
			{Name: "X/Twitter", Aliases: []string{"Twitter", "X.com"}},
			{Name: "BBC", Aliases: []string{"BBC"}},
			{Name: "CNN", Aliases: []string{"CNN"}},
			{Name: "Aurora Intel", Aliases: []string{"Aurora Intel"}},
			{Name: "OSINTdefender", Aliases: []string{"OSINTdefender"}},
		},
		Confirmed: MarkerTier{
			Markers: []string{"✅", "אמינות גבוהה", "מאומת"},
			Delta:   3,
		},
		Rumor: MarkerTier{
			Markers: []string{"❓", "אמינות נמוכה", "לא מאומת", "שמועה"},
			Delta:   -3,
		},
		SingleSource: MarkerTier{
			Markers: []string{"⚠️", "מקור בודד", "לא מאושר"},
			Delta:   -1,
		},
		WindowBefore: 50,
		WindowAfter:  100,
	}
}
