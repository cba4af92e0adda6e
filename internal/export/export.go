// Package export writes the aggregated post records to a spreadsheet or CSV
// file. Both formats share the same header and row contract so a row reads
// identically either way.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/redditsnap/internal/models"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const (
	defaultFilePrefix = "reddit_top_posts_"
	timestampLayout   = "20060102_150405"
)

// Header is the column order for every export, matching the PostRecord fields.
var Header = []string{
	"forum_name",
	"post_id",
	"title",
	"score",
	"comment_count",
	"created_at",
	"external_url",
	"permalink",
	"is_text_post",
	"body_text",
	"author_name",
}

// Detect picks the output format from the destination's extension. An
// unrecognized extension falls back to CSV with ".csv" appended to the
// supplied name, which keeps the original tool's behavior.
func Detect(path string) (Format, string) {
	switch {
	case strings.HasSuffix(path, ".xlsx"):
		return FormatXLSX, path
	case strings.HasSuffix(path, ".csv"):
		return FormatCSV, path
	default:
		return FormatCSV, path + ".csv"
	}
}

// Write serializes the records to the destination path, picking the format
// from its extension. An empty path defaults to a timestamped spreadsheet.
// Returns the path actually written, or "" when there was nothing to write.
func Write(records []models.PostRecord, path string) (string, error) {
	if path == "" {
		return WriteXLSX(records, "")
	}

	format, resolved := Detect(path)
	if format == FormatXLSX {
		return WriteXLSX(records, resolved)
	}
	return WriteCSV(records, resolved)
}

func defaultPath(format Format) string {
	return fmt.Sprintf("%s%s.%s", defaultFilePrefix, time.Now().Format(timestampLayout), format)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func recordRow(r models.PostRecord) []string {
	return []string{
		r.ForumName,
		r.PostID,
		r.Title,
		strconv.Itoa(r.Score),
		strconv.Itoa(r.CommentCount),
		r.CreatedAt.Format(time.RFC3339),
		r.ExternalURL,
		r.Permalink,
		strconv.FormatBool(r.IsTextPost),
		r.BodyText,
		r.AuthorName,
	}
}
