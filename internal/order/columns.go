// Package order keeps the display order of outcome columns. It is a view
// concern: the aggregator never reads it, the serializers do.
package order

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownLabel is returned when a reorder names a label that is not a column.
	ErrUnknownLabel = errors.New("unknown outcome label")
	// ErrOutOfRange is returned when a move would push a column past either end.
	ErrOutOfRange = errors.New("column move out of range")
)

// Columns is an ordered permutation of outcome labels. It is not safe for
// concurrent use.
type Columns struct {
	labels []string
	manual bool
}

// New seeds the order from the aggregator's default ordering.
func New(labels []string) *Columns {
	return &Columns{labels: slices.Clone(labels)}
}

// Labels returns a copy of the current order.
func (c *Columns) Labels() []string {
	return slices.Clone(c.labels)
}

// Len returns the number of columns.
func (c *Columns) Len() int {
	return len(c.labels)
}

// Manual reports whether the order was changed by hand since it was seeded.
func (c *Columns) Manual() bool {
	return c.manual
}

// Index returns the position of label, or -1.
func (c *Columns) Index(label string) int {
	return slices.Index(c.labels, label)
}

// Reorder swaps the positions of two labels, as a header drag-and-drop does.
func (c *Columns) Reorder(from, to string) error {
	i := c.Index(from)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, from)
	}
	j := c.Index(to)
	if j < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, to)
	}
	if i == j {
		return nil
	}
	c.labels[i], c.labels[j] = c.labels[j], c.labels[i]
	c.manual = true
	return nil
}

// Move swaps label with the column delta positions away.
func (c *Columns) Move(label string, delta int) error {
	i := c.Index(label)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	j := i + delta
	if j < 0 || j >= len(c.labels) {
		return fmt.Errorf("%w: %q by %d", ErrOutOfRange, label, delta)
	}
	return c.Reorder(label, c.labels[j])
}

// Rebase adapts the order to a fresh aggregation. An untouched order simply
// adopts next. A manual order keeps its relative order for labels that still
// exist, drops vanished ones and appends new labels in next's order.
func (c *Columns) Rebase(next []string) *Columns {
	if !c.manual {
		return New(next)
	}

	present := make(map[string]bool, len(next))
	for _, label := range next {
		present[label] = true
	}

	labels := make([]string, 0, len(next))
	seen := make(map[string]bool, len(next))
	for _, label := range c.labels {
		if present[label] {
			labels = append(labels, label)
			seen[label] = true
		}
	}
	for _, label := range next {
		if !seen[label] {
			labels = append(labels, label)
		}
	}

	return &Columns{labels: labels, manual: true}
}
