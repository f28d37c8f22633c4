package content

import (
	"sort"
	"time"
)

// Post is a blog article as served by the content upstream. The upstream
// owns the lifecycle; this codebase only reads.
type Post struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content,omitempty"`
	Date          time.Time  `json:"date"`
	Author        string     `json:"author"`
	Categories    []Category `json:"categories"`
	Tags          []Tag      `json:"tags,omitempty"`
	FeaturedImage *Image     `json:"featuredImage,omitempty"`
}

type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Tag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

// Page is one bounded window of posts plus continuation metadata. EndCursor
// is opaque; empty means no cursor was returned.
type Page struct {
	Posts       []Post `json:"posts"`
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// SortPostsByDateDesc orders posts newest-first. Stable so posts sharing a
// timestamp keep their upstream relative order.
func SortPostsByDateDesc(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}
