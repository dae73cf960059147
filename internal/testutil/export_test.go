package testutil

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportBuilder_Build(t *testing.T) {
	text := NewExportBuilder(t).
		WithBOM().
		WithHeader().
		WithDonation("A(a)", 100, "잭팟(10%)").
		With(Donation{Donor: "B(b)", Amount: "5개", Message: "hi"}).
		Build()

	assert.Equal(t,
		"\ufeff"+Header+"\n"+
			"별풍선,\"A(a)\",100,,잭팟(10%)\n"+
			"별풍선,\"B(b)\",5개,hi,\n",
		text)
}

func TestExportBuilder_Dated(t *testing.T) {
	day := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	text := NewExportBuilder(t).Dated().WithDatedDonation(day, "A(a)", 7, "").Build()

	assert.Equal(t, "별풍선,\"2024-03-05 14:30:00\",A(a),7,,\n", text)
}

func TestExportBuilder_Generated(t *testing.T) {
	last := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	text := NewExportBuilder(t).Dated().WithGenerated(10, 3, last).Build()

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], `별풍선,"2024-06-30 00:00:00",시청자0(viewer0),1,`))
	assert.Contains(t, lines[1], "시청자1(viewer1)")
	assert.Contains(t, lines[3], "시청자0(viewer0)")
}

func TestExportBuilder_WriteFile(t *testing.T) {
	path := NewExportBuilder(t).WithFixture(FixtureRoulette).WriteFile()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, len(FixtureRoulette.Donations()), strings.Count(string(data), Marker+","))
}

func TestFixtures(t *testing.T) {
	for _, f := range []Fixture{FixtureRoulette, FixtureMessy} {
		t.Run(f.Name(), func(t *testing.T) {
			assert.NotEmpty(t, f.Donations())
			for _, d := range f.Donations() {
				assert.NotEmpty(t, d.Donor)
				assert.NotEmpty(t, d.Amount)
			}
		})
	}
}
