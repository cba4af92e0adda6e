package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/spacesedan/redditsnap/internal/models"
)

// Credentials identify this application to the Reddit API.
type Credentials struct {
	ClientID     string
	ClientSecret string
	UserAgent    string
}

type RedditClient struct {
	Config    *clientcredentials.Config
	Client    *http.Client
	BaseURL   string
	UserAgent string
	mu        sync.Mutex
}

func NewRedditClient(creds Credentials) *RedditClient {
	oauthConf := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     REDDIT_AUTH_URL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	return &RedditClient{
		Config:    oauthConf,
		Client:    oauthConf.Client(context.Background()),
		BaseURL:   REDDIT_API_URL,
		UserAgent: creds.UserAgent,
	}
}

// RefreshClient drops the held token and forces a fresh one on the next request.
func (rc *RedditClient) RefreshClient() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.Client = rc.Config.Client(context.Background())
}

// TopPosts fetches up to limit top-ranked posts from a subreddit within the
// given time window, following listing cursors until the limit is reached or
// the listing runs out. Posts come back in the platform's ranking order.
func (rc *RedditClient) TopPosts(ctx context.Context, subreddit string, limit int, filter TimeFilter) ([]models.RawPost, error) {
	posts := make([]models.RawPost, 0, limit)
	after := ""

	for len(posts) < limit {
		pageSize := limit - len(posts)
		if pageSize > MAX_PAGE_SIZE {
			pageSize = MAX_PAGE_SIZE
		}

		listing, err := rc.fetchPage(ctx, subreddit, filter, pageSize, after)
		if err != nil {
			return nil, err
		}

		for _, child := range listing.Data.Children {
			posts = append(posts, child.Data)
			if len(posts) == limit {
				break
			}
		}

		if listing.Data.After == "" || len(listing.Data.Children) == 0 {
			break
		}
		after = listing.Data.After
	}

	return posts, nil
}

func (rc *RedditClient) fetchPage(ctx context.Context, subreddit string, filter TimeFilter, pageSize int, after string) (*models.RedditListing, error) {
	parsedUrl, err := url.Parse(fmt.Sprintf("%s/r/%s/top", rc.BaseURL, subreddit))
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse URL: %w", err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Add("t", string(filter))
	queryParams.Add("limit", strconv.Itoa(pageSize))
	queryParams.Add("raw_json", "1")
	if after != "" {
		queryParams.Add("after", after)
	}
	parsedUrl.RawQuery = queryParams.Encode()

	refreshed := false
	backoff := INITIAL_BACKOFF

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedUrl.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", rc.UserAgent)

		resp, err := rc.Client.Do(req)
		if err != nil {
			return nil, err
		}

		switch resp.StatusCode {
		case http.StatusOK:
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return nil, err
			}
			var listing models.RedditListing
			if err := json.Unmarshal(body, &listing); err != nil {
				return nil, fmt.Errorf("[RedditClient] Failed to parse listing: %w", err)
			}
			return &listing, nil

		case http.StatusUnauthorized:
			resp.Body.Close()
			if refreshed {
				return nil, fmt.Errorf("[RedditClient] Unauthorized after token refresh")
			}
			slog.Warn("[RedditClient] Token expired - Refreshing and Retrying...")
			rc.RefreshClient()
			refreshed = true

		case http.StatusTooManyRequests:
			resp.Body.Close()
			slog.Warn("[RedditClient] 429 Too Many Requests - Retrying with backoff",
				slog.Int("attempt", attempt), slog.Duration("backoff", backoff))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > MAX_BACKOFF {
				backoff = MAX_BACKOFF
			}

		default:
			status := resp.StatusCode
			resp.Body.Close()
			return nil, fmt.Errorf("[RedditClient] Unexpected status %d for r/%s", status, subreddit)
		}
	}

	return nil, fmt.Errorf("[RedditClient] Max retries reached for r/%s", subreddit)
}
