// Package filter provides the date and amount predicates consulted by the
// aggregator. Predicates are plain values passed per run; nothing here holds
// process-wide state.
package filter

import (
	"time"

	"github.com/soopatree/balloon/internal/extract"
)

// DatePredicate decides whether a record's raw date token is in scope.
type DatePredicate func(token string) bool

// AmountPredicate decides whether a record's parsed amount is in scope.
type AmountPredicate func(amount int64) bool

// AcceptAllDates is the date predicate used when no date filter is configured.
func AcceptAllDates(string) bool { return true }

// AcceptAllAmounts is the amount predicate used when no amount filter is configured.
func AcceptAllAmounts(int64) bool { return true }

// Set is the pair of predicates applied during one aggregation run.
type Set struct {
	Date   DatePredicate
	Amount AmountPredicate
}

// None accepts every record.
func None() Set {
	return Set{Date: AcceptAllDates, Amount: AcceptAllAmounts}
}

// WithDefaults fills unset predicates with accept-all ones.
func (s Set) WithDefaults() Set {
	if s.Date == nil {
		s.Date = AcceptAllDates
	}
	if s.Amount == nil {
		s.Amount = AcceptAllAmounts
	}
	return s
}

// DateRange is an inclusive calendar-day range. Nil bounds are open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether the range has no bounds at all.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// Contains parses the date portion of token and checks it against the range.
// An unbounded range accepts anything; otherwise unparseable tokens fail.
func (r DateRange) Contains(token string) bool {
	if r.IsZero() {
		return true
	}

	date, ok := extract.ParseDate(token)
	if !ok {
		return false
	}
	if r.Start != nil && date.Before(Day(*r.Start)) {
		return false
	}
	if r.End != nil && !date.Before(Day(*r.End).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// AmountRange bounds a donation amount; each bound is inclusive and optional.
type AmountRange struct {
	Min *int64
	Max *int64
}

// IsZero reports whether the range has no bounds at all.
func (r AmountRange) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// Contains reports whether amount lies within the bounds.
func (r AmountRange) Contains(amount int64) bool {
	if r.Min != nil && amount < *r.Min {
		return false
	}
	if r.Max != nil && amount > *r.Max {
		return false
	}
	return true
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
