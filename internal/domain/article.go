package domain

import "time"

// CategoryHome is the reserved category sentinel meaning "no filter":
// browsing home shows the full collection.
const CategoryHome = "home"

type Article struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Excerpt     string    `json:"excerpt" yaml:"excerpt"`
	Content     string    `json:"content" yaml:"content"`
	ImageURL    string    `json:"imageUrl" yaml:"image_url"`
	Category    string    `json:"category" yaml:"category"`
	Author      string    `json:"author" yaml:"author"`
	PublishedAt time.Time `json:"publishedAt" yaml:"published_at"`
	ReadTime    string    `json:"readTime" yaml:"read_time"`

	// IsBookmarked is the only mutable field; it changes solely through
	// the store's bookmark toggle.
	IsBookmarked bool `json:"isBookmarked" yaml:"is_bookmarked"`
}
