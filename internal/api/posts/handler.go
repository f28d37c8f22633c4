package posts

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"puntifurbi-backend/internal/domain/content"
	"puntifurbi-backend/internal/infra/pagecache"
	"puntifurbi-backend/internal/infra/wordpress"
)

const (
	defaultPageSize = 12
	maxPageSize     = 50
)

// ContentSource is what the handler needs from the content upstream.
type ContentSource interface {
	GetAllPosts(ctx context.Context, first int, after string) (content.Page, error)
	GetPostBySlug(ctx context.Context, slug string) (*content.Post, error)
	GetRelatedPosts(ctx context.Context, categories []content.Category) ([]content.Post, error)
}

type Handler struct {
	source ContentSource
	cache  *pagecache.Store
}

func NewHandler(source ContentSource, cache *pagecache.Store) *Handler {
	return &Handler{source: source, cache: cache}
}

// List serves one pagination window: GET /posts?first=N&after=cursor.
func (h *Handler) List(c *gin.Context) {
	first := defaultPageSize
	if raw := c.Query("first"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "first must be a positive integer"})
			return
		}
		first = n
	}
	if first > maxPageSize {
		first = maxPageSize
	}
	after := c.Query("after")

	page, err := h.cache.GetPage(first, after, func() (content.Page, error) {
		return h.source.GetAllPosts(c.Request.Context(), first, after)
	})
	if err != nil {
		respondUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetBySlug serves one post. A missing slug is a 404, not a failure.
func (h *Handler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.source.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// Related serves up to 5 posts sharing the post's first category. The post
// itself may appear among them; the upstream query does not exclude it.
func (h *Handler) Related(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.source.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	related, err := h.source.GetRelatedPosts(c.Request.Context(), post.Categories)
	if err != nil {
		// Related posts are decoration; a broken upstream degrades to an
		// empty list the same way the post page always has.
		log.Warn().Err(err).Str("slug", slug).Msg("related posts unavailable")
		c.JSON(http.StatusOK, gin.H{"posts": []content.Post{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": related})
}

func respondUpstreamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wordpress.ErrMalformedResponse):
		log.Error().Err(err).Msg("content API returned a malformed document")
		c.JSON(http.StatusBadGateway, gin.H{"error": "content API returned an unexpected document"})
	case errors.Is(err, wordpress.ErrQueryRejected):
		log.Error().Err(err).Msg("content API rejected the query")
		c.JSON(http.StatusBadGateway, gin.H{"error": "content query failed"})
	default:
		log.Error().Err(err).Msg("content API unreachable")
		c.JSON(http.StatusBadGateway, gin.H{"error": "content API unavailable"})
	}
}
