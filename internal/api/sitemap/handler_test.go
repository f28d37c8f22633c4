package sitemap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntifurbi-backend/internal/domain/content"
)

type stubLister struct {
	page content.Page
	err  error
}

func (s *stubLister) GetAllPosts(ctx context.Context, first int, after string) (content.Page, error) {
	return s.page, s.err
}

func serve(t *testing.T, lister PostLister) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/sitemap.xml", NewHandler("https://puntifurbi.com", lister).Serve)

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSitemapIncludesStaticAndPostURLs(t *testing.T) {
	rr := serve(t, &stubLister{page: content.Page{Posts: []content.Post{
		{Slug: "offerta-roma", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}}})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/xml")

	body := rr.Body.String()
	assert.True(t, strings.HasPrefix(body, xmlHeaderPrefix), "missing XML declaration")
	for _, loc := range []string{
		"https://puntifurbi.com/",
		"https://puntifurbi.com/voli-economici/",
		"https://puntifurbi.com/blog/",
		"https://puntifurbi.com/come-funziona/",
		"https://puntifurbi.com/premium/",
		"https://puntifurbi.com/elite/",
		"https://puntifurbi.com/blog/offerta-roma/",
	} {
		assert.Contains(t, body, "<loc>"+loc+"</loc>")
	}
	assert.Contains(t, body, "<lastmod>2024-03-01</lastmod>")
}

func TestSitemapDegradesWithoutPosts(t *testing.T) {
	rr := serve(t, &stubLister{err: errors.New("upstream down")})

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "https://puntifurbi.com/blog/")
	assert.NotContains(t, body, "/blog/offerta-roma/")
}

const xmlHeaderPrefix = "<?xml"
