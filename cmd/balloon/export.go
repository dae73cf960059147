package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/soopatree/balloon/internal/cli"
	"github.com/soopatree/balloon/internal/common"
	"github.com/soopatree/balloon/internal/config"
	"github.com/soopatree/balloon/internal/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <export.csv>",
		Short: "Write the ranking and outcome tables as CSV (and optionally XLSX)",
		Long: `Aggregate a donation export and write 후원순위.csv and 룰렛결과통계.csv.
Both files are UTF-8 with a byte-order mark so spreadsheet applications
open them correctly.

Examples:
  # Write into the current directory
  balloon export donations.csv

  # Write into ./reports, with a workbook as well
  balloon export --out ./reports --xlsx donations.csv

  # Swap two outcome columns before writing
  balloon export --swap "꽝(70%)=잭팟(10%)" donations.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().String("out", ".", "output directory")
	cmd.Flags().Bool("xlsx", false, "also write a workbook with both tables")
	cmd.Flags().StringArray("swap", nil, "swap two outcome columns, as from=to (repeatable)")

	_ = viper.BindPFlag(config.KeyExportDir, cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag(config.KeyExportXLSX, cmd.Flags().Lookup("xlsx"))

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	l, err := loadExport(cmd.Context(), cmd, args[0], time.Now())
	if err != nil {
		return err
	}
	if l.bundle.Empty() {
		return common.NewUserError(common.MsgNoData, nil)
	}

	swaps, _ := cmd.Flags().GetStringArray("swap")
	for _, swap := range swaps {
		from, to, ok := strings.Cut(swap, "=")
		if !ok {
			return fmt.Errorf("%w: swap %q must be written as from=to", common.ErrInvalidConfig, swap)
		}
		if err := l.session.Reorder(strings.TrimSpace(from), strings.TrimSpace(to)); err != nil {
			return fmt.Errorf("failed to swap columns: %w", err)
		}
	}

	dir := l.settings.ExportDir
	labels := l.session.Columns()
	bundle := l.bundle

	rankingPath := filepath.Join(dir, export.RankingFileName)
	outcomesPath := filepath.Join(dir, export.OutcomesFileName)
	workbookPath := filepath.Join(dir, export.WorkbookFileName)

	var g errgroup.Group
	g.Go(func() error {
		return export.WriteCSV(rankingPath, export.RankingCSV(bundle))
	})
	g.Go(func() error {
		return export.WriteCSV(outcomesPath, export.OutcomeMatrixCSV(bundle, labels))
	})
	if l.settings.XLSX {
		g.Go(func() error {
			return export.WriteXLSX(workbookPath, bundle, labels)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	written := []string{rankingPath, outcomesPath}
	if l.settings.XLSX {
		written = append(written, workbookPath)
	}
	out := cmd.OutOrStdout()
	for _, path := range written {
		fmt.Fprintln(out, cli.FormatSuccess("저장됨: "+path))
	}
	return nil
}
