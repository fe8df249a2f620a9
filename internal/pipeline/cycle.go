// Package pipeline sequences one scan cycle: load state, assemble context,
// generate, post-process, update source reliability and retention, persist.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sitrep/internal/assemble"
	"sitrep/internal/llm"
	"sitrep/internal/model"
	"sitrep/internal/retain"
	"sitrep/internal/store"
	"sitrep/internal/track"
)

// Cycle owns no algorithm beyond sequencing; the components it wires
// together do the real work.
type Cycle struct {
	cfg       *model.Config
	store     *store.Store
	assembler *assemble.Assembler
	tracker   *track.Tracker
	policy    retain.Policy
	gen       *llm.Generator
	log       *zap.Logger
	now       func() time.Time // injectable clock
}

// New wires a cycle from configuration. The generator is built by the
// caller so credential errors surface before any state is touched.
func New(cfg *model.Config, st *store.Store, gen *llm.Generator, log *zap.Logger) (*Cycle, error) {
	if log == nil {
		log = zap.NewNop()
	}
	policy, err := retain.New(cfg.Retention)
	if err != nil {
		return nil, err
	}
	return &Cycle{
		cfg:       cfg,
		store:     st,
		assembler: assemble.New(cfg.Context),
		tracker:   track.New(cfg.Tracker, nil),
		policy:    policy,
		gen:       gen,
		log:       log.With(zap.String("component", "cycle")),
		now:       time.Now,
	}, nil
}

// intelTimeFormat is the display timestamp on appended intel items.
const intelTimeFormat = "02/01/2006 15:04"

// Run executes one full cycle. extraIntel, when non-empty, is appended as
// a high-priority intel item and persisted immediately - caller-supplied
// input survives even if generation later fails. Any failure to obtain
// usable text is fatal for the cycle: no record is created and no other
// state is mutated.
func (c *Cycle) Run(ctx context.Context, extraIntel string) (*model.ScanRecord, error) {
	log := c.log.With(zap.String("run_id", uuid.NewString()))

	log.Info("loading state")
	state := c.store.LoadState()

	if extraIntel != "" {
		item := model.UserIntelItem{
			Text:     extraIntel,
			Priority: "high",
			Time:     c.now().In(c.cfg.Context.Location()).Format(intelTimeFormat),
		}
		if err := c.store.AppendIntel(item); err != nil {
			return nil, fmt.Errorf("append intel: %w", err)
		}
		state.Intel = append(state.Intel, item)
		log.Info("appended ad-hoc intel", zap.Int("items", len(state.Intel)))
	}

	system := c.assembler.Assemble(state.History, state.Sources, state.Intel, state.Feedback, c.now())
	log.Info("assembled context", zap.Int("chars", len(system)), zap.Int("history", len(state.History)))

	resp, err := c.gen.Generate(ctx, llm.GenerateRequest{
		System:     system,
		Prompt:     c.cfg.Context.TaskPrompt,
		Model:      c.cfg.Generation.Model,
		MaxTokens:  c.cfg.Generation.MaxTokens,
		MaxLookups: c.cfg.Generation.MaxLookups,
	})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	content := StripPreamble(resp.Text, c.cfg.Context.SectionMarker)
	if strings.TrimSpace(content) == "" {
		return nil, llm.ErrEmptyResult
	}
	log.Info("got briefing", zap.Int("chars", len(content)), zap.String("model", resp.Model), zap.Int("tokens", resp.TokensUsed))

	modelID := resp.Model
	if modelID == "" {
		modelID = c.cfg.Generation.Model
	}

	now := c.now().In(c.cfg.Context.Location())
	rec := model.ScanRecord{
		Timestamp: now.Unix(),
		TimeStr:   now.Format("02/01/2006 15:04:05"),
		Content:   content,
		Summary:   model.SummaryOf(content),
		ModelID:   modelID,
	}

	state.Latest = &rec
	state.History = c.policy.Insert(state.History, rec)
	state.Sources = c.tracker.Update(content, state.Sources)

	if err := c.store.SaveState(state); err != nil {
		return nil, fmt.Errorf("persist state: %w", err)
	}

	log.Info("cycle complete",
		zap.Int("history", len(state.History)),
		zap.Int("sources", len(state.Sources)),
		zap.String("summary", rec.Summary))
	return &rec, nil
}
