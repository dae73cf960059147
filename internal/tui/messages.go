package tui

import (
	"github.com/soopatree/balloon/internal/filter"
	"github.com/soopatree/balloon/internal/model"
)

// aggregatedMsg carries the result of a re-aggregation.
type aggregatedMsg struct {
	err      error
	cfg      filter.Config
	bundle   *model.Bundle
	resolved filter.Resolved
}
