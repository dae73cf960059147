package main

import (
	"fmt"
	"time"

	"github.com/soopatree/balloon/internal/cli"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <export.csv>",
		Short: "Print the donor ranking and roulette outcome tables",
		Long: `Aggregate a donation export and print the results.

Examples:
  # Everything in the file
  balloon analyze donations.csv

  # Last 30 days of a dated export, top 20 donors
  balloon analyze --shape dated --preset 30days --top 20 donations.csv

  # Only donations of 100 balloons or more
  balloon analyze --min 100 donations.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().Int("top", 0, "show only the top N donors (0 shows all)")
	cmd.Flags().Bool("outcomes", true, "print the roulette outcome table")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	l, err := loadExport(cmd.Context(), cmd, args[0], time.Now())
	if err != nil {
		return err
	}

	top, _ := cmd.Flags().GetInt("top")
	showOutcomes, _ := cmd.Flags().GetBool("outcomes")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("후원 통계"))
	fmt.Fprintln(out, cli.SubtleStyle.Render(cli.DateInfo(l.resolved.Dates, l.resolved.Preset, l.bundle.Statistics)))
	fmt.Fprintln(out, cli.Summary(l.bundle))

	if l.bundle.Empty() {
		fmt.Fprintln(out, cli.FormatWarning("조건에 맞는 후원 내역이 없습니다."))
		return nil
	}

	fmt.Fprintln(out, cli.RankingTable(l.bundle, top))
	if showOutcomes && len(l.bundle.OutcomeOrder) > 0 {
		fmt.Fprintln(out, cli.OutcomeTable(l.bundle, l.session.Columns()))
	}
	return nil
}
