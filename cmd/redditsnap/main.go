package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/spacesedan/redditsnap/config"
	"github.com/spacesedan/redditsnap/internal/clients"
	"github.com/spacesedan/redditsnap/internal/export"
	"github.com/spacesedan/redditsnap/internal/logging"
	"github.com/spacesedan/redditsnap/internal/scraper"
)

const defaultUserAgent = "redditsnap/1.0"

func main() {
	subreddits := flag.StringSlice("subreddits", nil, "subreddits to scrape (without r/), comma-separated or repeated")
	limit := flag.Int("limit", 25, "maximum number of posts per subreddit")
	timeFilter := flag.String("time-filter", "week", "time filter for top posts (day, week, month, year, all)")
	output := flag.String("output", "", "output file path (.xlsx or .csv; default timestamped .xlsx)")
	clientID := flag.String("client-id", "", "Reddit API client ID (or REDDIT_CLIENT_ID)")
	clientSecret := flag.String("client-secret", "", "Reddit API client secret (or REDDIT_CLIENT_SECRET)")
	userAgent := flag.String("user-agent", "", "user agent for Reddit API")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	config.LoadEnv()
	logging.InitLogger(*debug)

	if len(*subreddits) == 0 {
		usageError("at least one subreddit is required (--subreddits)")
	}
	if *limit <= 0 {
		usageError("--limit must be a positive integer")
	}

	filter, err := clients.ParseTimeFilter(*timeFilter)
	if err != nil {
		usageError(err.Error())
	}

	creds := clients.Credentials{
		ClientID:     envFallback(*clientID, "REDDIT_CLIENT_ID"),
		ClientSecret: envFallback(*clientSecret, "REDDIT_CLIENT_SECRET"),
		UserAgent:    envFallback(*userAgent, "REDDIT_USER_AGENT"),
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		usageError("Reddit API credentials are required (--client-id / --client-secret)")
	}
	if creds.UserAgent == "" {
		creds.UserAgent = defaultUserAgent
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := clients.NewRedditClient(creds)
	s := scraper.NewScraper(client, *limit, filter)

	records := s.ScrapeAll(ctx, *subreddits)

	// Fetch and export failures degrade to diagnostics; the run itself
	// always completes normally.
	if _, err := export.Write(records, *output); err != nil {
		slog.Error("Failed to write output", slog.String("error", err.Error()))
	}
}

func envFallback(value, key string) string {
	if value != "" {
		return value
	}
	return os.Getenv(key)
}

func usageError(msg string) {
	fmt.Fprintln(os.Stderr, "redditsnap:", msg)
	flag.Usage()
	os.Exit(2)
}
