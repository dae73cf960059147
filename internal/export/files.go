package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/soopatree/balloon/internal/model"
	"github.com/xuri/excelize/v2"
)

// utf8BOM lets spreadsheet applications detect UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Sheet names of the exported workbook.
const (
	RankingSheet  = "후원순위"
	OutcomesSheet = "룰렛결과통계"
)

// WriteCSV writes content to path as UTF-8 with a byte-order mark. The file
// is replaced atomically so a reader never sees a partial export.
func WriteCSV(path, content string) error {
	data := make([]byte, 0, len(utf8BOM)+len(content))
	data = append(data, utf8BOM...)
	data = append(data, content...)

	return writeAtomic(path, func(tmp string) error {
		return os.WriteFile(tmp, data, 0600)
	})
}

// writeAtomic lets write fill a uniquely named sibling of path, then renames
// it into place. The temporary file keeps the extension, which excelize
// checks. It is removed on any failure.
func writeAtomic(path string, write func(tmp string) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s", uuid.NewString(), filepath.Base(path)))
	if err := write(tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to move %s into place: %w", filepath.Base(path), err)
	}
	return nil
}

// WriteXLSX writes both views into one workbook, one sheet each.
func WriteXLSX(path string, bundle *model.Bundle, labels []string) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	if err := f.SetSheetName("Sheet1", RankingSheet); err != nil {
		return fmt.Errorf("failed to name ranking sheet: %w", err)
	}
	if err := writeRankingSheet(f, bundle); err != nil {
		return err
	}

	if _, err := f.NewSheet(OutcomesSheet); err != nil {
		return fmt.Errorf("failed to create outcome sheet: %w", err)
	}
	if err := writeOutcomeSheet(f, bundle, labels); err != nil {
		return err
	}

	return writeAtomic(path, func(tmp string) error {
		return f.SaveAs(tmp)
	})
}

func writeRankingSheet(f *excelize.File, bundle *model.Bundle) error {
	if err := setRow(f, RankingSheet, 1, toRow(RankingHeader)); err != nil {
		return err
	}
	for i, donor := range bundle.Donors {
		row := []any{i + 1, donor.DisplayLabel(), donor.ID, donor.PrimaryNickname(), donor.TotalAmount}
		if err := setRow(f, RankingSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeOutcomeSheet(f *excelize.File, bundle *model.Bundle, labels []string) error {
	header := toRow(OutcomeHeader)
	for _, label := range labels {
		header = append(header, label)
	}
	if err := setRow(f, OutcomesSheet, 1, header); err != nil {
		return err
	}

	for i, donor := range bundle.DonorsWithOutcomes() {
		row := []any{donor.DisplayLabel(), donor.ID, donor.PrimaryNickname()}
		for _, label := range labels {
			if count := bundle.Count(donor.ID, label); count > 0 {
				row = append(row, count)
			} else {
				row = append(row, nil)
			}
		}
		if err := setRow(f, OutcomesSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toRow(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
