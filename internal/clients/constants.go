package clients

import "time"

const (
	REDDIT_AUTH_URL = "https://www.reddit.com/api/v1/access_token"
	REDDIT_API_URL  = "https://oauth.reddit.com"

	MAX_RETRIES     = 5
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 32 * time.Second

	// Reddit caps listing pages at 100 items; larger limits paginate.
	MAX_PAGE_SIZE = 100
)
