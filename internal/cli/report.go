package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/soopatree/balloon/internal/filter"
	"github.com/soopatree/balloon/internal/model"
)

// KoreanDate renders t as "2024년 3월 5일".
func KoreanDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

// NicknameDisplay renders "nick(id)" followed by any other nicknames the donor
// used, each marked with an asterisk.
func NicknameDisplay(d model.Donor) string {
	display := d.DisplayLabel()
	if alts := d.AlternateNicknames(); len(alts) > 0 {
		display += " *" + strings.Join(alts, ", *")
	}
	return display
}

// DateInfo is the one-line status describing which period the statistics
// cover and how many records made it through the filters.
func DateInfo(dates filter.DateRange, preset filter.Preset, stats model.Statistics) string {
	count := fmt.Sprintf(" [%d/%d 개]", stats.ProcessedRows, stats.TotalRows)

	if dates.IsZero() {
		var span string
		if stats.MinDate != nil && stats.MaxDate != nil {
			span = fmt.Sprintf(" (%s ~ %s)", KoreanDate(*stats.MinDate), KoreanDate(*stats.MaxDate))
		}
		return "현재 통계: 전체 기간" + span + count
	}

	var start, end string
	if dates.Start != nil {
		start = KoreanDate(*dates.Start)
	}
	if dates.End != nil {
		end = KoreanDate(*dates.End)
	}
	period := strings.TrimSpace(start + " ~ " + end)
	if label := preset.Label(); label != "" {
		period += " " + label
	}
	return "현재 통계: " + period + count
}

// Summary renders the run totals in a box.
func Summary(bundle *model.Bundle) string {
	stats := bundle.Statistics
	var b strings.Builder
	fmt.Fprintf(&b, "  • 후원자: %d명\n", len(bundle.Donors))
	fmt.Fprintf(&b, "  • 별풍선 합계: %d개\n", bundle.TotalAmount())
	fmt.Fprintf(&b, "  • 룰렛 결과 종류: %d\n", len(bundle.OutcomeOrder))
	fmt.Fprintf(&b, "  • 기록: 전체 %d / 처리 %d / 제외 %d / 오류 %d",
		stats.TotalRows, stats.ProcessedRows, stats.SkippedRows, stats.ErrorRows)
	return RenderBox(ChartIcon+" 분석 완료", b.String())
}

// RankingTable renders the donor ranking. A positive limit keeps only the top
// entries.
func RankingTable(bundle *model.Bundle, limit int) string {
	donors := bundle.Donors
	if limit > 0 && len(donors) > limit {
		donors = donors[:limit]
	}

	rows := make([][]string, 0, len(donors))
	for i, d := range donors {
		rows = append(rows, []string{strconv.Itoa(i + 1), NicknameDisplay(d), strconv.FormatInt(d.TotalAmount, 10)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		Headers("순위", "후원자", "후원개수").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 2:
				return AmountStyle
			default:
				return TableCellStyle
			}
		}).
		Render()
}

// OutcomeTable renders the outcome matrix with columns in the given order.
func OutcomeTable(bundle *model.Bundle, labels []string) string {
	headers := append([]string{"후원자"}, labels...)

	donors := bundle.DonorsWithOutcomes()
	rows := make([][]string, 0, len(donors))
	for _, d := range donors {
		row := make([]string, 0, len(headers))
		row = append(row, d.DisplayLabel())
		for _, label := range labels {
			cell := ""
			if count := bundle.Count(d.ID, label); count > 0 {
				cell = strconv.Itoa(count)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col > 0:
				return AmountStyle
			default:
				return TableCellStyle
			}
		}).
		Render()
}
