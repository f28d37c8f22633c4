package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"puntifurbi-backend/config"
	checkoutapi "puntifurbi-backend/internal/api/checkout"
	plansapi "puntifurbi-backend/internal/api/plans"
	postsapi "puntifurbi-backend/internal/api/posts"
	sitemapapi "puntifurbi-backend/internal/api/sitemap"
	"puntifurbi-backend/internal/api/stripewebhook"
	"puntifurbi-backend/internal/app/http/middleware"
	"puntifurbi-backend/internal/domain/pricing"
	"puntifurbi-backend/internal/infra/pagecache"
	"puntifurbi-backend/internal/infra/wordpress"
)

// Deps bundles the shared values every handler group is built from. The
// catalog in particular is constructed once and handed to the plans listing,
// the checkout endpoint, and the webhook, so all three read one table.
type Deps struct {
	Catalog *pricing.Catalog
	CMS     *wordpress.Client
	Cache   *pagecache.Store
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.Use(middleware.RequestID(), middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	webhook := stripewebhook.NewHandler(deps.Catalog)
	r.POST("/webhook", webhook.Handle)

	plansHandler := plansapi.NewHandler(deps.Catalog)
	r.GET("/plans", plansHandler.List)

	checkoutHandler := checkoutapi.NewHandler(deps.Catalog)
	r.POST("/checkout/create-session", checkoutHandler.CreateSession)
	r.GET("/checkout/session-status", checkoutHandler.SessionStatus)

	// Content routes carry the deployment marker so clients drop stale
	// caches after a release.
	postsHandler := postsapi.NewHandler(deps.CMS, deps.Cache)
	posts := r.Group("/posts")
	posts.Use(middleware.ContentVersion(config.BUILD_VERSION))
	posts.GET("", postsHandler.List)
	posts.GET("/:slug", postsHandler.GetBySlug)
	posts.GET("/:slug/related", postsHandler.Related)

	r.GET("/version", middleware.ContentVersion(config.BUILD_VERSION), func(c *gin.Context) {
		c.JSON(200, gin.H{"version": config.BUILD_VERSION})
	})

	sitemapHandler := sitemapapi.NewHandler(config.BASE_URL, deps.CMS)
	r.GET("/sitemap.xml", sitemapHandler.Serve)
}
