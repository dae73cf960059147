package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/soopatree/balloon/internal/aggregate"
	"github.com/soopatree/balloon/internal/config"
	"github.com/soopatree/balloon/internal/extract"
	"github.com/soopatree/balloon/internal/filter"
	"github.com/soopatree/balloon/internal/model"
	"github.com/soopatree/balloon/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loaded is an export that has been read and aggregated once.
type loaded struct {
	session  *aggregate.Session
	bundle   *model.Bundle
	settings config.Settings
	resolved filter.Resolved
}

// loadExport reads path, aggregates it with the configured filters and
// returns the live session.
func loadExport(ctx context.Context, cmd *cobra.Command, path string, now time.Time) (*loaded, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	resolved, err := settings.Filter.Resolve(now)
	if err != nil {
		return nil, err
	}

	shape, err := extract.ShapeByName(settings.Shape)
	if err != nil {
		return nil, err
	}

	opts := source.Options{Encoding: settings.Encoding}
	if showProgress, _ := cmd.Flags().GetBool("progress"); showProgress {
		opts.Progress = cmd.ErrOrStderr()
	}
	text, err := source.Load(path, opts)
	if err != nil {
		return nil, err
	}

	session := aggregate.NewSession(text, aggregate.Options{
		Logger:  slog.Default().With("file", path),
		Filters: resolved.Set(),
		Shape:   shape,
	}, aggregate.WithKeepManualOrder(settings.KeepManualOrder))

	if !resolved.Dates.IsZero() && !shape.Has(extract.RoleDate) {
		slog.Warn("Date filter set but the record shape carries no dates, every record will be skipped",
			"shape", shape.Name, "preset", resolved.Preset)
	}

	bundle, err := session.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", path, err)
	}

	return &loaded{
		session:  session,
		bundle:   bundle,
		settings: settings,
		resolved: resolved,
	}, nil
}
