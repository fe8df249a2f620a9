// Package retain decides which scan records survive into the next cycle's
// state.
package retain

import (
	"fmt"

	"sitrep/internal/model"
)

// Policy trims history. Insert prepends the new record (index 0 = last
// cycle) and trims; Apply is the pure trim and is idempotent - applying it
// to an already-trimmed list is a no-op.
type Policy interface {
	Insert(h model.History, rec model.ScanRecord) model.History
	Apply(h model.History) model.History
}

// New builds the configured policy.
func New(cfg model.RetentionConfig) (Policy, error) {
	switch cfg.Mode {
	case model.RetentionBounded, "":
		limit := cfg.Cap
		if limit <= 0 {
			limit = 50
		}
		return Bounded{Cap: limit}, nil
	case model.RetentionSparse:
		div := cfg.StrideDivisor
		if div <= 0 {
			div = 2
		}
		return Sparse{StrideDivisor: div}, nil
	default:
		return nil, fmt.Errorf("unknown retention mode: %s (supported: bounded, sparse)", cfg.Mode)
	}
}

// Bounded keeps at most Cap of the newest records.
type Bounded struct {
	Cap int
}

// Insert prepends rec and trims to the cap.
func (p Bounded) Insert(h model.History, rec model.ScanRecord) model.History {
	return p.Apply(prepend(h, rec))
}

// Apply truncates to the Cap newest records.
func (p Bounded) Apply(h model.History) model.History {
	if len(h) > p.Cap {
		return h[:p.Cap]
	}
	return h
}

// Sparse keeps the newest record plus up to two older records spread
// across the tail, trading completeness for temporal diversity under a
// tight size budget.
type Sparse struct {
	StrideDivisor int
}

// Insert prepends rec and trims to the sparse selection.
func (p Sparse) Insert(h model.History, rec model.ScanRecord) model.History {
	return p.Apply(prepend(h, rec))
}

// Apply keeps h[0], the first older record, and one further older record
// at a stride of max(1, older_count/StrideDivisor), clipped to the last
// valid index. At most 3 records survive; with more than 3 older
// candidates the stride is at least 2, so the two older picks are never
// adjacent.
func (p Sparse) Apply(h model.History) model.History {
	if len(h) <= 1 {
		return h
	}
	older := h[1:]
	out := model.History{h[0], older[0]}
	if len(older) > 1 {
		stride := len(older) / p.StrideDivisor
		if stride < 1 {
			stride = 1
		}
		idx := stride
		if idx > len(older)-1 {
			idx = len(older) - 1
		}
		if idx > 0 {
			out = append(out, older[idx])
		}
	}
	return out
}

func prepend(h model.History, rec model.ScanRecord) model.History {
	out := make(model.History, 0, len(h)+1)
	out = append(out, rec)
	return append(out, h...)
}
