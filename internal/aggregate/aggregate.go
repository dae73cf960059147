// Package aggregate folds extracted donation records into per-donor totals and
// roulette outcome statistics.
package aggregate

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/soopatree/balloon/internal/common"
	"github.com/soopatree/balloon/internal/extract"
	"github.com/soopatree/balloon/internal/filter"
	"github.com/soopatree/balloon/internal/identity"
	"github.com/soopatree/balloon/internal/model"
)

// Options configures one aggregation run.
type Options struct {
	Logger  *slog.Logger
	Filters filter.Set
	Shape   extract.Shape
}

// Aggregate extracts every record from text and folds the ones that pass the
// filters into a fresh bundle. A text without the export marker fails with
// common.ErrFormat; a bad record is counted and skipped, never fatal.
func Aggregate(ctx context.Context, text string, opts Options) (*model.Bundle, error) {
	start := time.Now()

	shape := opts.Shape
	if shape.Marker == "" {
		shape = extract.DonorShape
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	filters := opts.Filters.WithDefaults()

	extractor, err := extract.NewExtractor(shape)
	if err != nil {
		return nil, err
	}
	records, err := extractor.Records(text)
	if err != nil {
		return nil, err
	}

	acc := newAccumulator()
	for rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		acc.stats.TotalRows++
		kept, err := acc.add(rec, filters)
		switch {
		case err != nil:
			acc.stats.ErrorRows++
			logger.Debug("Skipping malformed record",
				"offset", rec.Offset,
				"donor", rec.DonorLabel,
				"error", err)
		case !kept:
			acc.stats.SkippedRows++
		default:
			acc.stats.ProcessedRows++
		}
	}

	bundle := acc.finish()
	bundle.RunID = uuid.NewString()
	bundle.Shape = shape.Name

	logger.Info("Aggregated donation records",
		"run_id", bundle.RunID,
		"shape", shape.Name,
		"total_rows", bundle.Statistics.TotalRows,
		"processed_rows", bundle.Statistics.ProcessedRows,
		"skipped_rows", bundle.Statistics.SkippedRows,
		"error_rows", bundle.Statistics.ErrorRows,
		"donors", len(bundle.Donors),
		"outcomes", len(bundle.OutcomeOrder),
		"duration", time.Since(start))

	return bundle, nil
}

// accumulator holds the mutable state of a single pass.
type accumulator struct {
	donors        map[string]*model.Donor
	frequency     map[string]map[string]int
	probabilities map[string]float64
	outcomeSeen   map[string]bool
	donorOrder    []string
	outcomeOrder  []string
	stats         model.Statistics
}

func newAccumulator() *accumulator {
	return &accumulator{
		donors:        make(map[string]*model.Donor),
		frequency:     make(map[string]map[string]int),
		probabilities: make(map[string]float64),
		outcomeSeen:   make(map[string]bool),
	}
}

// add folds one record. It reports false when a filter rejected the record.
// All checks run before any state is touched, so a failing record leaves the
// accumulator unchanged.
func (a *accumulator) add(rec model.RawRecord, filters filter.Set) (kept bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			kept = false
			err = &common.RecordError{Offset: rec.Offset, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	date, hasDate := extract.ParseDate(rec.DateToken)
	if !filters.Date(rec.DateToken) {
		return false, nil
	}

	amount, err := extract.ParseAmount(rec.AmountToken)
	if err != nil {
		return false, &common.RecordError{Offset: rec.Offset, Err: err}
	}
	if !filters.Amount(amount) {
		return false, nil
	}

	id, nickname := identity.Resolve(rec.DonorLabel)
	if err := identity.Validate(id); err != nil {
		return false, &common.RecordError{Offset: rec.Offset, Err: err}
	}

	donor, ok := a.donors[id]
	if !ok {
		donor = model.NewDonor(id)
		a.donors[id] = donor
		a.donorOrder = append(a.donorOrder, id)
	}
	donor.AddNickname(nickname)
	donor.TotalAmount += amount
	if rec.Message != "" {
		donor.Messages = append(donor.Messages, rec.Message)
	}
	if hasDate {
		donor.DateHistory = append(donor.DateHistory, model.DateEntry{
			Date:         date,
			Amount:       amount,
			Message:      rec.Message,
			OutcomeLabel: rec.OutcomeLabel,
		})
	}

	if rec.OutcomeLabel != "" {
		a.addOutcome(id, rec.OutcomeLabel)
	}

	return true, nil
}

func (a *accumulator) addOutcome(donorID, label string) {
	counts, ok := a.frequency[donorID]
	if !ok {
		counts = make(map[string]int)
		a.frequency[donorID] = counts
	}
	counts[label]++

	if !a.outcomeSeen[label] {
		a.outcomeSeen[label] = true
		a.outcomeOrder = append(a.outcomeOrder, label)
	}

	if _, recorded := a.probabilities[label]; !recorded {
		if p, ok := extract.ExtractProbability(label); ok {
			a.probabilities[label] = p
		}
	}
}

// finish ranks donors and outcomes and computes the date span.
func (a *accumulator) finish() *model.Bundle {
	donors := make([]model.Donor, 0, len(a.donorOrder))
	for _, id := range a.donorOrder {
		donors = append(donors, *a.donors[id])
	}
	slices.SortStableFunc(donors, func(x, y model.Donor) int {
		return cmp.Compare(y.TotalAmount, x.TotalAmount)
	})

	outcomes := slices.Clone(a.outcomeOrder)
	slices.SortStableFunc(outcomes, func(x, y string) int {
		return cmp.Compare(a.probabilities[y], a.probabilities[x])
	})

	stats := a.stats
	for _, d := range donors {
		for _, entry := range d.DateHistory {
			if stats.MinDate == nil || entry.Date.Before(*stats.MinDate) {
				minDate := entry.Date
				stats.MinDate = &minDate
			}
			if stats.MaxDate == nil || entry.Date.After(*stats.MaxDate) {
				maxDate := entry.Date
				stats.MaxDate = &maxDate
			}
		}
	}

	return &model.Bundle{
		Donors:              donors,
		OutcomeOrder:        outcomes,
		OutcomeFrequency:    a.frequency,
		ResultProbabilities: a.probabilities,
		Statistics:          stats,
	}
}
