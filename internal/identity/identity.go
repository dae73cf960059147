// Package identity derives a stable donor key from a raw donor label.
package identity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/soopatree/balloon/internal/common"
)

var (
	accountRegex    = regexp.MustCompile(`\(([^)]+)\)`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Resolve splits a label such as "Alice(u1)" into its account id and
// nickname. Labels without an account segment use the label itself, with
// whitespace collapsed to underscores, as the id.
func Resolve(label string) (id, nickname string) {
	if m := accountRegex.FindStringSubmatch(label); m != nil {
		before, _, _ := strings.Cut(label, "(")
		return m[1], strings.TrimSpace(before)
	}
	return whitespaceRegex.ReplaceAllString(label, "_"), label
}

// Validate rejects the empty id. Any other id, including "_" or " ", is a
// valid grouping key.
func Validate(id string) error {
	if id == "" {
		return fmt.Errorf("%w: %q", common.ErrEmptyDonorID, id)
	}
	return nil
}
