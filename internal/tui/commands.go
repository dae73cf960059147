package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soopatree/balloon/internal/aggregate"
	"github.com/soopatree/balloon/internal/filter"
)

// reaggregate resolves cfg against now and re-runs the session with it.
func reaggregate(ctx context.Context, session *aggregate.Session, cfg filter.Config, now time.Time) tea.Cmd {
	return func() tea.Msg {
		resolved, err := cfg.Resolve(now)
		if err != nil {
			return aggregatedMsg{cfg: cfg, err: err}
		}
		bundle, err := session.OnFilterChange(ctx, resolved.Set())
		return aggregatedMsg{cfg: cfg, bundle: bundle, resolved: resolved, err: err}
	}
}
