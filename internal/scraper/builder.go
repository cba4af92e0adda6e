package scraper

import (
	"time"

	"github.com/spacesedan/redditsnap/internal/models"
)

const (
	redditBaseURL     = "https://www.reddit.com"
	deletedAuthorName = "[deleted]"
)

// BuildRecord normalizes one raw platform post into a PostRecord. Removed
// accounts come back with an empty author and get the platform's placeholder;
// link posts get an empty body regardless of any selftext on the raw object.
func BuildRecord(forum string, raw models.RawPost) models.PostRecord {
	author := raw.Author
	if author == "" {
		author = deletedAuthorName
	}

	body := ""
	if raw.IsSelf {
		body = raw.Selftext
	}

	return models.PostRecord{
		ForumName:    forum,
		PostID:       raw.ID,
		Title:        raw.Title,
		Score:        raw.Score,
		CommentCount: raw.NumComments,
		CreatedAt:    time.Unix(int64(raw.CreatedUTC), 0).UTC(),
		ExternalURL:  raw.URL,
		Permalink:    redditBaseURL + raw.Permalink,
		IsTextPost:   raw.IsSelf,
		BodyText:     body,
		AuthorName:   author,
	}
}
