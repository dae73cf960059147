package model

import "time"

// Statistics describes one aggregation run.
type Statistics struct {
	MinDate       *time.Time
	MaxDate       *time.Time
	TotalRows     int // every extraction match, regardless of filters
	ProcessedRows int // matches that passed all filters and parsed cleanly
	SkippedRows   int // matches rejected by a filter
	ErrorRows     int // matches that failed while being processed
}

// Bundle is the immutable result of one aggregation run.
type Bundle struct {
	OutcomeFrequency    map[string]map[string]int // donor id -> outcome label -> count
	ResultProbabilities map[string]float64        // outcome label -> declared percentage
	RunID               string
	Shape               string
	Donors              []Donor  // ranked by total amount, descending
	OutcomeOrder        []string // outcome labels by probability, descending
	Statistics          Statistics
}

// Count returns how many times donorID received the outcome label.
func (b *Bundle) Count(donorID, label string) int {
	return b.OutcomeFrequency[donorID][label]
}

// Probability returns the declared probability of label, or 0 when the label
// never carried a parseable annotation.
func (b *Bundle) Probability(label string) float64 {
	return b.ResultProbabilities[label]
}

// Donor looks up a donor by id.
func (b *Bundle) Donor(id string) (Donor, bool) {
	for _, d := range b.Donors {
		if d.ID == id {
			return d, true
		}
	}
	return Donor{}, false
}

// DonorsWithOutcomes returns the ranked donors that have at least one outcome.
func (b *Bundle) DonorsWithOutcomes() []Donor {
	var donors []Donor
	for _, d := range b.Donors {
		if len(b.OutcomeFrequency[d.ID]) > 0 {
			donors = append(donors, d)
		}
	}
	return donors
}

// TotalAmount sums the totals of every donor in the bundle.
func (b *Bundle) TotalAmount() int64 {
	var total int64
	for _, d := range b.Donors {
		total += d.TotalAmount
	}
	return total
}

// Empty reports whether the run produced no donors.
func (b *Bundle) Empty() bool {
	return len(b.Donors) == 0
}
