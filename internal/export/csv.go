// Package export renders aggregation results as CSV text and spreadsheet files.
package export

import (
	"strconv"
	"strings"

	"github.com/soopatree/balloon/internal/model"
)

// Fixed output file names.
const (
	RankingFileName  = "후원순위.csv"
	OutcomesFileName = "룰렛결과통계.csv"
	WorkbookFileName = "후원통계.xlsx"
)

// Column headers.
var (
	RankingHeader = []string{"순위", "후원자", "아이디", "닉네임", "후원개수"}
	OutcomeHeader = []string{"후원자", "아이디", "닉네임"}
)

// RankingCSV renders the donor ranking: rank, "nick(id)", "id", "nick", total.
func RankingCSV(bundle *model.Bundle) string {
	var b strings.Builder
	writeHeader(&b, RankingHeader)
	b.WriteByte('\n')

	for i, donor := range bundle.Donors {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte(',')
		b.WriteString(Quote(donor.DisplayLabel()))
		b.WriteByte(',')
		b.WriteString(Quote(donor.ID))
		b.WriteByte(',')
		b.WriteString(Quote(donor.PrimaryNickname()))
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(donor.TotalAmount, 10))
		b.WriteByte('\n')
	}
	return b.String()
}

// OutcomeMatrixCSV renders per-donor outcome counts with one column per label
// in the given order. Donors without any outcome are left out; zero counts
// are empty cells.
func OutcomeMatrixCSV(bundle *model.Bundle, labels []string) string {
	var b strings.Builder
	writeHeader(&b, OutcomeHeader)
	for _, label := range labels {
		b.WriteByte(',')
		b.WriteString(Quote(HeaderLabel(label)))
	}
	b.WriteByte('\n')

	for _, donor := range bundle.DonorsWithOutcomes() {
		b.WriteString(Quote(donor.DisplayLabel()))
		b.WriteByte(',')
		b.WriteString(Quote(donor.ID))
		b.WriteByte(',')
		b.WriteString(Quote(donor.PrimaryNickname()))
		for _, label := range labels {
			b.WriteByte(',')
			if count := bundle.Count(donor.ID, label); count > 0 {
				b.WriteString(strconv.Itoa(count))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeHeader(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Quote(cell))
	}
}

// Quote wraps a field in double quotes, doubling embedded quotes.
func Quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// HeaderLabel keeps an outcome label from splitting a header row.
func HeaderLabel(label string) string {
	return strings.ReplaceAll(label, ",", ";")
}
