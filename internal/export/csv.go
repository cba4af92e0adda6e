package export

import (
	"encoding/csv"
	"log/slog"
	"os"

	"github.com/spacesedan/redditsnap/internal/models"
)

// WriteCSV writes the records as comma-separated text with a header row and
// no index column. An empty path gets a timestamped default name.
func WriteCSV(records []models.PostRecord, path string) (string, error) {
	if len(records) == 0 {
		slog.Warn("No data to save")
		return "", nil
	}

	if path == "" {
		path = defaultPath(FormatCSV)
	}
	if err := ensureDir(path); err != nil {
		return "", err
	}

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(Header); err != nil {
		return "", err
	}
	for _, r := range records {
		if err := writer.Write(recordRow(r)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	slog.Info("Data saved", slog.String("path", path), slog.Int("records", len(records)))
	return path, nil
}
