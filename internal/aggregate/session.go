package aggregate

import (
	"context"
	"errors"
	"sync"

	"github.com/soopatree/balloon/internal/filter"
	"github.com/soopatree/balloon/internal/model"
	"github.com/soopatree/balloon/internal/order"
)

// ErrNotRun is returned when a session is queried before its first run.
var ErrNotRun = errors.New("session has not been aggregated yet")

// Session owns one loaded export. Filter changes re-run the full pass over
// the same text; at most one pass runs at a time.
type Session struct {
	bundle     *model.Bundle
	columns    *order.Columns
	text       string
	opts       Options
	mu         sync.Mutex
	keepManual bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithKeepManualOrder controls whether a hand-made column order survives a
// re-aggregation.
func WithKeepManualOrder(keep bool) SessionOption {
	return func(s *Session) {
		s.keepManual = keep
	}
}

// NewSession prepares a session over text. Nothing runs until Run.
func NewSession(text string, opts Options, options ...SessionOption) *Session {
	s := &Session{
		text:       text,
		opts:       opts,
		keepManual: true,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Run aggregates with the session's current filters.
func (s *Session) Run(ctx context.Context) (*model.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runLocked(ctx, s.opts.Filters)
}

// OnFilterChange re-aggregates with new filters. On failure the previous
// bundle and filters stay in place.
func (s *Session) OnFilterChange(ctx context.Context, filters filter.Set) (*model.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runLocked(ctx, filters)
}

func (s *Session) runLocked(ctx context.Context, filters filter.Set) (*model.Bundle, error) {
	opts := s.opts
	opts.Filters = filters

	bundle, err := Aggregate(ctx, s.text, opts)
	if err != nil {
		return nil, err
	}

	s.opts.Filters = filters
	s.bundle = bundle
	if s.columns == nil || !s.keepManual {
		s.columns = order.New(bundle.OutcomeOrder)
	} else {
		s.columns = s.columns.Rebase(bundle.OutcomeOrder)
	}
	return bundle, nil
}

// Bundle returns the latest result, or nil before the first run.
func (s *Session) Bundle() *model.Bundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bundle
}

// Columns returns the current outcome column order.
func (s *Session) Columns() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.columns == nil {
		return nil
	}
	return s.columns.Labels()
}

// Reorder swaps two outcome columns.
func (s *Session) Reorder(from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.columns == nil {
		return ErrNotRun
	}
	return s.columns.Reorder(from, to)
}

// Move shifts one outcome column by delta positions.
func (s *Session) Move(label string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.columns == nil {
		return ErrNotRun
	}
	return s.columns.Move(label, delta)
}
