package models

import "time"

// RedditListing mirrors the JSON envelope returned by the Reddit listing
// endpoints (/r/<subreddit>/top and friends).
type RedditListing struct {
	Data RedditListingData `json:"data"`
}

type RedditListingData struct {
	After    string              `json:"after"`
	Children []RedditListingItem `json:"children"`
}

type RedditListingItem struct {
	Data RawPost `json:"data"`
}

// RawPost is one post exactly as the platform reports it. Author is the empty
// string when the account has been removed; Permalink is site-relative.
type RawPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	URL         string  `json:"url"`
	Permalink   string  `json:"permalink"`
	IsSelf      bool    `json:"is_self"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
}

// PostRecord is the normalized row written to the export file, one per
// fetched post.
type PostRecord struct {
	ForumName    string    `json:"forum_name"`
	PostID       string    `json:"post_id"`
	Title        string    `json:"title"`
	Score        int       `json:"score"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	ExternalURL  string    `json:"external_url"`
	Permalink    string    `json:"permalink"`
	IsTextPost   bool      `json:"is_text_post"`
	BodyText     string    `json:"body_text"`
	AuthorName   string    `json:"author_name"`
}
