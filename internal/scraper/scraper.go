package scraper

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacesedan/redditsnap/internal/clients"
	"github.com/spacesedan/redditsnap/internal/models"
)

// Pause between forum requests, to stay under the platform's rate ceiling.
const DEFAULT_FORUM_DELAY = 2 * time.Second

// PostLister is the slice of the Reddit client the scraper depends on.
type PostLister interface {
	TopPosts(ctx context.Context, subreddit string, limit int, filter clients.TimeFilter) ([]models.RawPost, error)
}

type Scraper struct {
	client PostLister
	limit  int
	filter clients.TimeFilter
	delay  time.Duration
}

func NewScraper(client PostLister, limit int, filter clients.TimeFilter) *Scraper {
	if limit <= 0 {
		limit = 25
	}
	if filter == "" {
		filter = clients.TimeFilterWeek
	}
	return &Scraper{
		client: client,
		limit:  limit,
		filter: filter,
		delay:  DEFAULT_FORUM_DELAY,
	}
}

// WithDelay overrides the inter-forum pause. Mostly for tests.
func (s *Scraper) WithDelay(d time.Duration) *Scraper {
	s.delay = d
	return s
}

// FetchForum fetches the top posts for one subreddit and normalizes each into
// a PostRecord, preserving the platform's ranking order. The error is returned
// as a value; ScrapeAll decides what to do with it.
func (s *Scraper) FetchForum(ctx context.Context, forum string) ([]models.PostRecord, error) {
	raws, err := s.client.TopPosts(ctx, forum, s.limit, s.filter)
	if err != nil {
		return nil, err
	}

	records := make([]models.PostRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, BuildRecord(forum, raw))
	}
	return records, nil
}

// ScrapeAll fetches every forum in order and concatenates the results. A
// failed forum degrades to zero records with a diagnostic; the batch always
// continues. Returns an empty (non-nil) slice when nothing was collected.
func (s *Scraper) ScrapeAll(ctx context.Context, forums []string) []models.PostRecord {
	allRecords := make([]models.PostRecord, 0, s.limit*len(forums))

	for i, forum := range forums {
		if i > 0 {
			select {
			case <-ctx.Done():
				slog.Warn("Context cancelled, stopping batch",
					slog.String("subreddit", forum))
				return allRecords
			case <-time.After(s.delay):
			}
		}

		slog.Info("Scraping subreddit...", slog.String("subreddit", forum))

		records, err := s.FetchForum(ctx, forum)
		if err != nil {
			slog.Warn("Failed to scrape subreddit, skipping",
				slog.String("subreddit", forum),
				slog.String("error", err.Error()))
			continue
		}

		slog.Info("Successfully scraped subreddit",
			slog.String("subreddit", forum),
			slog.Int("posts", len(records)))
		allRecords = append(allRecords, records...)
	}

	if len(allRecords) == 0 {
		slog.Warn("No posts were collected")
	}

	return allRecords
}
