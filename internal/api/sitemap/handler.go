package sitemap

import (
	"context"
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"puntifurbi-backend/internal/domain/content"
)

// sitemapPostCount bounds how many posts make it into the sitemap.
const sitemapPostCount = 50

type staticPage struct {
	path       string
	changeFreq string
	priority   string
}

// Canonical static pages with their crawl hints.
var staticPages = []staticPage{
	{"/", "daily", "1.0"},
	{"/voli-economici/", "daily", "0.9"},
	{"/blog/", "weekly", "0.8"},
	{"/come-funziona/", "monthly", "0.7"},
	{"/premium/", "monthly", "0.6"},
	{"/elite/", "monthly", "0.6"},
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// PostLister is the slice of the content source the sitemap needs.
type PostLister interface {
	GetAllPosts(ctx context.Context, first int, after string) (content.Page, error)
}

type Handler struct {
	baseURL string
	posts   PostLister
}

func NewHandler(baseURL string, posts PostLister) *Handler {
	return &Handler{baseURL: baseURL, posts: posts}
}

// Serve renders sitemap.xml: the static page list, plus blog post URLs when
// the content upstream cooperates. A fetch failure degrades to the static
// list alone.
func (h *Handler) Serve(c *gin.Context) {
	now := time.Now().Format("2006-01-02")

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        h.baseURL + p.path,
			LastMod:    now,
			ChangeFreq: p.changeFreq,
			Priority:   p.priority,
		})
	}

	page, err := h.posts.GetAllPosts(c.Request.Context(), sitemapPostCount, "")
	if err != nil {
		log.Warn().Err(err).Msg("sitemap: posts unavailable, serving static entries only")
	} else {
		for _, post := range page.Posts {
			entry := urlEntry{
				Loc:        h.baseURL + "/blog/" + post.Slug + "/",
				ChangeFreq: "monthly",
				Priority:   "0.5",
			}
			if !post.Date.IsZero() {
				entry.LastMod = post.Date.Format("2006-01-02")
			}
			set.URLs = append(set.URLs, entry)
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sitemap"})
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
