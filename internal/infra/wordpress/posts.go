package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"puntifurbi-backend/internal/domain/content"
	"puntifurbi-backend/internal/metrics"
)

// Wire shapes for the WPGraphQL response documents.

type wirePost struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	Date    string `json:"date"`
	Author  *struct {
		Node struct {
			Name string `json:"name"`
		} `json:"node"`
	} `json:"author"`
	Categories *struct {
		Nodes []struct {
			DatabaseID int    `json:"databaseId"`
			Name       string `json:"name"`
			Slug       string `json:"slug"`
		} `json:"nodes"`
	} `json:"categories"`
	Tags *struct {
		Nodes []struct {
			Name string `json:"name"`
			Slug string `json:"slug"`
		} `json:"nodes"`
	} `json:"tags"`
	FeaturedImage *struct {
		Node struct {
			SourceURL string `json:"sourceUrl"`
			AltText   string `json:"altText"`
		} `json:"node"`
	} `json:"featuredImage"`
}

type wirePageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// GetAllPosts fetches one window of published posts. An upstream "no data"
// document yields an empty page, not an error; the window is re-sorted by
// date because the upstream ordering guarantee is not trusted.
func (c *Client) GetAllPosts(ctx context.Context, first int, after string) (content.Page, error) {
	variables := map[string]any{"first": first}
	if after != "" {
		variables["after"] = after
	}

	data, err := c.fetchGraphQL(ctx, queryAllPosts, variables)
	if err != nil {
		metrics.ContentFetches.WithLabelValues("posts", outcomeFor(err)).Inc()
		return content.Page{}, err
	}

	var doc struct {
		Posts *struct {
			Nodes    []wirePost   `json:"nodes"`
			PageInfo wirePageInfo `json:"pageInfo"`
		} `json:"posts"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		metrics.ContentFetches.WithLabelValues("posts", "malformed").Inc()
		return content.Page{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if doc.Posts == nil {
		log.Warn().Msg("content API returned no posts data")
		metrics.ContentFetches.WithLabelValues("posts", "empty").Inc()
		return content.Page{Posts: []content.Post{}}, nil
	}

	posts := make([]content.Post, 0, len(doc.Posts.Nodes))
	for _, n := range doc.Posts.Nodes {
		posts = append(posts, c.toPost(n))
	}
	content.SortPostsByDateDesc(posts)
	if first > 0 && len(posts) > first {
		// Same distrust as the re-sort: the upstream promised a window of
		// this size, hold it to that.
		posts = posts[:first]
	}

	metrics.ContentFetches.WithLabelValues("posts", "ok").Inc()
	return content.Page{
		Posts:       posts,
		HasNextPage: doc.Posts.PageInfo.HasNextPage,
		EndCursor:   doc.Posts.PageInfo.EndCursor,
	}, nil
}

// GetPostBySlug resolves one post. Absence is an expected outcome and is
// reported as (nil, nil).
func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*content.Post, error) {
	data, err := c.fetchGraphQL(ctx, queryPostBySlug, map[string]any{"slug": slug})
	if err != nil {
		metrics.ContentFetches.WithLabelValues("post_by_slug", outcomeFor(err)).Inc()
		return nil, err
	}

	var doc struct {
		Post *wirePost `json:"post"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		metrics.ContentFetches.WithLabelValues("post_by_slug", "malformed").Inc()
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if doc.Post == nil {
		metrics.ContentFetches.WithLabelValues("post_by_slug", "empty").Inc()
		return nil, nil
	}

	metrics.ContentFetches.WithLabelValues("post_by_slug", "ok").Inc()
	post := c.toPost(*doc.Post)
	return &post, nil
}

// GetRelatedPosts returns up to 5 posts from the first category carrying a
// usable id. Empty or id-less category lists degrade to an empty result.
func (c *Client) GetRelatedPosts(ctx context.Context, categories []content.Category) ([]content.Post, error) {
	categoryID := ""
	for _, cat := range categories {
		if cat.ID != "" {
			categoryID = cat.ID
			break
		}
	}
	if categoryID == "" {
		return []content.Post{}, nil
	}

	data, err := c.fetchGraphQL(ctx, queryRelatedPosts, map[string]any{"categoryId": categoryID})
	if err != nil {
		metrics.ContentFetches.WithLabelValues("related", outcomeFor(err)).Inc()
		return nil, err
	}

	var doc struct {
		Category *struct {
			Posts struct {
				Nodes []wirePost `json:"nodes"`
			} `json:"posts"`
		} `json:"category"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		metrics.ContentFetches.WithLabelValues("related", "malformed").Inc()
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if doc.Category == nil {
		metrics.ContentFetches.WithLabelValues("related", "empty").Inc()
		return []content.Post{}, nil
	}

	posts := make([]content.Post, 0, len(doc.Category.Posts.Nodes))
	for _, n := range doc.Category.Posts.Nodes {
		posts = append(posts, c.toPost(n))
	}
	content.SortPostsByDateDesc(posts)

	metrics.ContentFetches.WithLabelValues("related", "ok").Inc()
	return posts, nil
}

func (c *Client) toPost(w wirePost) content.Post {
	p := content.Post{
		ID:      w.ID,
		Title:   w.Title,
		Slug:    w.Slug,
		Excerpt: c.sanitizer.Sanitize(w.Excerpt),
		Content: c.sanitizer.Sanitize(w.Content),
		Date:    parseDate(w.Date),
	}
	if w.Author != nil {
		p.Author = w.Author.Node.Name
	}
	if w.Categories != nil {
		for _, n := range w.Categories.Nodes {
			cat := content.Category{Name: n.Name, Slug: n.Slug}
			if n.DatabaseID != 0 {
				cat.ID = strconv.Itoa(n.DatabaseID)
			}
			p.Categories = append(p.Categories, cat)
		}
	}
	if w.Tags != nil {
		for _, n := range w.Tags.Nodes {
			p.Tags = append(p.Tags, content.Tag{Name: n.Name, Slug: n.Slug})
		}
	}
	if w.FeaturedImage != nil {
		p.FeaturedImage = &content.Image{
			URL:     w.FeaturedImage.Node.SourceURL,
			AltText: w.FeaturedImage.Node.AltText,
		}
	}
	return p
}

// WPGraphQL emits local date-times without a zone; RFC 3339 is accepted as
// well in case the upstream is configured differently.
func parseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	log.Warn().Str("date", s).Msg("unparseable post date")
	return time.Time{}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, ErrQueryRejected):
		return "rejected"
	default:
		return "unavailable"
	}
}
