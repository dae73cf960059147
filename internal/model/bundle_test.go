package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBundle() *Bundle {
	return &Bundle{
		Donors: []Donor{
			{ID: "a", Nicknames: []string{"A"}, TotalAmount: 100},
			{ID: "b", Nicknames: []string{"B"}, TotalAmount: 40},
			{ID: "c", Nicknames: []string{"C"}, TotalAmount: 5},
		},
		OutcomeFrequency: map[string]map[string]int{
			"a": {"꽝(70%)": 2},
			"c": {"잭팟(10%)": 1},
		},
		ResultProbabilities: map[string]float64{"꽝(70%)": 70, "잭팟(10%)": 10},
		OutcomeOrder:        []string{"꽝(70%)", "잭팟(10%)"},
	}
}

func TestBundle_Lookups(t *testing.T) {
	b := testBundle()

	assert.Equal(t, 2, b.Count("a", "꽝(70%)"))
	assert.Zero(t, b.Count("a", "잭팟(10%)"))
	assert.Zero(t, b.Count("missing", "꽝(70%)"))

	assert.InDelta(t, 70.0, b.Probability("꽝(70%)"), 1e-9)
	assert.Zero(t, b.Probability("당첨"))

	d, ok := b.Donor("b")
	assert.True(t, ok)
	assert.Equal(t, int64(40), d.TotalAmount)
	_, ok = b.Donor("missing")
	assert.False(t, ok)
}

func TestBundle_DonorsWithOutcomes(t *testing.T) {
	donors := testBundle().DonorsWithOutcomes()

	ids := make([]string, 0, len(donors))
	for _, d := range donors {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestBundle_Totals(t *testing.T) {
	b := testBundle()

	assert.Equal(t, int64(145), b.TotalAmount())
	assert.False(t, b.Empty())
	assert.True(t, (&Bundle{}).Empty())
}
