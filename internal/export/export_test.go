package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/spacesedan/redditsnap/internal/models"
)

func sampleRecords(n int) []models.PostRecord {
	records := make([]models.PostRecord, 0, n)
	for i := 0; i < n; i++ {
		id := "post" + strconv.Itoa(i)
		records = append(records, models.PostRecord{
			ForumName:    "golang",
			PostID:       id,
			Title:        "Title for " + id,
			Score:        100 + i,
			CommentCount: 10 + i,
			CreatedAt:    time.Date(2025, 6, 1, 12, 0, i, 0, time.UTC),
			ExternalURL:  "https://example.com/" + id,
			Permalink:    "https://www.reddit.com/r/golang/comments/" + id + "/",
			IsTextPost:   i%2 == 0,
			BodyText:     "",
			AuthorName:   "gopher",
		})
	}
	return records
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	return dir
}

func TestDetect(t *testing.T) {
	tests := []struct {
		in       string
		format   Format
		resolved string
	}{
		{"out.csv", FormatCSV, "out.csv"},
		{"out.xlsx", FormatXLSX, "out.xlsx"},
		{"out.txt", FormatCSV, "out.txt.csv"},
		{"reports/out", FormatCSV, "reports/out.csv"},
	}
	for _, tt := range tests {
		format, resolved := Detect(tt.in)
		assert.Equal(t, tt.format, format, tt.in)
		assert.Equal(t, tt.resolved, resolved, tt.in)
	}
}

func TestWriteEmpty(t *testing.T) {
	dir := chdirTemp(t)

	t.Run("csv", func(t *testing.T) {
		path, err := WriteCSV(nil, "")
		require.NoError(t, err)
		assert.Equal(t, "", path)
	})

	t.Run("xlsx", func(t *testing.T) {
		path, err := WriteXLSX(nil, "")
		require.NoError(t, err)
		assert.Equal(t, "", path)
	})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "empty export must not create a file")
}

func TestWriteCSV(t *testing.T) {
	t.Run("default name matches timestamp pattern", func(t *testing.T) {
		chdirTemp(t)

		path, err := WriteCSV(sampleRecords(3), "")
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^reddit_top_posts_\d{8}_\d{6}\.csv$`), path)

		file, err := os.Open(path)
		require.NoError(t, err)
		defer file.Close()

		rows, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 4, "header plus one row per record")
		assert.Equal(t, Header, rows[0])
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		dir := t.TempDir()
		dest := filepath.Join(dir, "nested", "deeper", "out.csv")

		path, err := WriteCSV(sampleRecords(1), dest)
		require.NoError(t, err)
		assert.Equal(t, dest, path)
		assert.FileExists(t, dest)
	})

	t.Run("round trip preserves field values", func(t *testing.T) {
		dir := t.TempDir()
		records := sampleRecords(2)
		records[1].AuthorName = "[deleted]"
		records[1].BodyText = "line one\nline two, with a comma"

		path, err := WriteCSV(records, filepath.Join(dir, "out.csv"))
		require.NoError(t, err)

		file, err := os.Open(path)
		require.NoError(t, err)
		defer file.Close()

		rows, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)

		for i, rec := range records {
			row := rows[i+1]
			assert.Equal(t, rec.ForumName, row[0])
			assert.Equal(t, rec.PostID, row[1])
			assert.Equal(t, rec.Title, row[2])
			assert.Equal(t, strconv.Itoa(rec.Score), row[3])
			assert.Equal(t, strconv.Itoa(rec.CommentCount), row[4])
			assert.Equal(t, rec.CreatedAt.Format(time.RFC3339), row[5])
			assert.Equal(t, rec.ExternalURL, row[6])
			assert.Equal(t, rec.Permalink, row[7])
			assert.Equal(t, strconv.FormatBool(rec.IsTextPost), row[8])
			assert.Equal(t, rec.BodyText, row[9])
			assert.Equal(t, rec.AuthorName, row[10])
		}
	})
}

func TestWriteXLSX(t *testing.T) {
	t.Run("default name matches timestamp pattern", func(t *testing.T) {
		chdirTemp(t)

		path, err := WriteXLSX(sampleRecords(2), "")
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^reddit_top_posts_\d{8}_\d{6}\.xlsx$`), path)
		assert.FileExists(t, path)
	})

	t.Run("single sheet with header and record rows", func(t *testing.T) {
		dir := t.TempDir()
		records := sampleRecords(3)

		path, err := WriteXLSX(records, filepath.Join(dir, "out.xlsx"))
		require.NoError(t, err)

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())

		rows, err := f.GetRows("Sheet1")
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, Header, rows[0])
		assert.Equal(t, recordRow(records[0]), rows[1])
		assert.Equal(t, recordRow(records[2]), rows[3])
	})
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	t.Run("csv extension selects csv", func(t *testing.T) {
		path, err := Write(sampleRecords(1), filepath.Join(dir, "a.csv"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "a.csv"), path)
	})

	t.Run("xlsx extension selects spreadsheet", func(t *testing.T) {
		path, err := Write(sampleRecords(1), filepath.Join(dir, "b.xlsx"))
		require.NoError(t, err)

		_, err = excelize.OpenFile(path)
		require.NoError(t, err)
	})

	t.Run("unknown extension coerces to csv", func(t *testing.T) {
		path, err := Write(sampleRecords(1), filepath.Join(dir, "c.txt"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "c.txt.csv"), path)
		assert.FileExists(t, path)
	})

	t.Run("empty collection writes nothing", func(t *testing.T) {
		path, err := Write(nil, filepath.Join(dir, "d.csv"))
		require.NoError(t, err)
		assert.Equal(t, "", path)
		assert.NoFileExists(t, filepath.Join(dir, "d.csv"))
	})
}
