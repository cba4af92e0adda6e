package export

import (
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/spacesedan/redditsnap/internal/models"
)

const sheetName = "Sheet1"

// WriteXLSX writes the records as a single-sheet spreadsheet with a header
// row and no index column. An empty path gets a timestamped default name.
func WriteXLSX(records []models.PostRecord, path string) (string, error) {
	if len(records) == 0 {
		slog.Warn("No data to save")
		return "", nil
	}

	if path == "" {
		path = defaultPath(FormatXLSX)
	}
	if err := ensureDir(path); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSheetRow(f, 1, Header); err != nil {
		return "", err
	}
	for i, r := range records {
		if err := writeSheetRow(f, i+2, recordRow(r)); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", err
	}

	slog.Info("Data saved", slog.String("path", path), slog.Int("records", len(records)))
	return path, nil
}

func writeSheetRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheetName, cell, &cells)
}
