// Package testutil builds synthetic donation exports for tests.
//
// Example:
//
//	text := testutil.NewExportBuilder(t).
//		WithBOM().
//		WithFixture(testutil.FixtureRoulette).
//		WithDonation("홍길동(hong)", 500, "잭팟(10%)").
//		Build()
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

// Marker is the leading token of every generated record.
const Marker = "별풍선"

// Header is the column row real exports start with.
const Header = "구분,후원자,개수,메시지,결과"

// Donation is one record of a synthetic export.
type Donation struct {
	Date    string // only written by dated builders
	Donor   string // "nickname(id)"
	Message string
	Outcome string
	Amount  string
}

// ExportBuilder assembles export text row by row.
type ExportBuilder struct {
	t         testing.TB
	donations []Donation
	noise     []string
	bom       bool
	header    bool
	dated     bool
}

// NewExportBuilder creates an empty builder for the given test.
func NewExportBuilder(t testing.TB) *ExportBuilder {
	t.Helper()
	return &ExportBuilder{t: t}
}

// WithBOM prefixes the text with a UTF-8 byte-order mark.
func (b *ExportBuilder) WithBOM() *ExportBuilder {
	b.bom = true
	return b
}

// WithHeader starts the text with the usual column row.
func (b *ExportBuilder) WithHeader() *ExportBuilder {
	b.header = true
	return b
}

// Dated writes a quoted date column before the donor.
func (b *ExportBuilder) Dated() *ExportBuilder {
	b.dated = true
	return b
}

// WithDonation adds one record without a message.
func (b *ExportBuilder) WithDonation(donor string, amount int64, outcome string) *ExportBuilder {
	return b.With(Donation{Donor: donor, Amount: strconv.FormatInt(amount, 10), Outcome: outcome})
}

// WithDatedDonation adds one record on the given day.
func (b *ExportBuilder) WithDatedDonation(day time.Time, donor string, amount int64, outcome string) *ExportBuilder {
	return b.With(Donation{
		Date:    day.Format("2006-01-02 15:04:05"),
		Donor:   donor,
		Amount:  strconv.FormatInt(amount, 10),
		Outcome: outcome,
	})
}

// With adds records as given.
func (b *ExportBuilder) With(donations ...Donation) *ExportBuilder {
	b.donations = append(b.donations, donations...)
	return b
}

// WithFixture adds every record of a fixture.
func (b *ExportBuilder) WithFixture(f Fixture) *ExportBuilder {
	return b.With(f.Donations()...)
}

// WithNoise adds a line that does not match any record shape.
func (b *ExportBuilder) WithNoise(line string) *ExportBuilder {
	b.noise = append(b.noise, line)
	return b
}

// WithGenerated adds n deterministic records spread over donors donors and
// the roulette fixture's outcome labels, one day apart ending on last.
func (b *ExportBuilder) WithGenerated(n, donors int, last time.Time) *ExportBuilder {
	outcomes := []string{"꽝(70%)", "당첨(20%)", "잭팟(10%)", ""}
	for i := 0; i < n; i++ {
		id := i % donors
		b.With(Donation{
			Date:    last.AddDate(0, 0, -(i % 400)).Format("2006-01-02 15:04:05"),
			Donor:   fmt.Sprintf("시청자%d(viewer%d)", id, id),
			Amount:  strconv.Itoa(1 + (i*37)%500),
			Outcome: outcomes[i%len(outcomes)],
		})
	}
	return b
}

// Build renders the export text.
func (b *ExportBuilder) Build() string {
	var s strings.Builder
	if b.bom {
		s.WriteString("\ufeff")
	}
	if b.header {
		if b.dated {
			s.WriteString("구분,일시,후원자,개수,메시지,결과\n")
		} else {
			s.WriteString(Header + "\n")
		}
	}
	for _, line := range b.noise {
		s.WriteString(line + "\n")
	}
	for _, d := range b.donations {
		s.WriteString(Marker)
		if b.dated {
			s.WriteString(`,"` + d.Date + `",` + d.Donor)
		} else {
			s.WriteString(`,"` + d.Donor + `"`)
		}
		s.WriteString("," + d.Amount + "," + d.Message + "," + d.Outcome + "\n")
	}
	return s.String()
}

// WriteFile writes the export into a temporary directory and returns its path.
func (b *ExportBuilder) WriteFile() string {
	b.t.Helper()
	path := filepath.Join(b.t.TempDir(), "donations.csv")
	if err := os.WriteFile(path, []byte(b.Build()), 0600); err != nil {
		b.t.Fatalf("failed to write export: %v", err)
	}
	return path
}
