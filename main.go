package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"puntifurbi-backend/config"
	routes "puntifurbi-backend/internal/app/http"
	"puntifurbi-backend/internal/domain/pricing"
	"puntifurbi-backend/internal/infra/pagecache"
	"puntifurbi-backend/internal/infra/wordpress"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	config.LoadEnv()

	catalog := pricing.Default()
	cms := wordpress.New(config.WORDPRESS_API_URL, nil)
	cache := pagecache.New(config.BUILD_VERSION, pagecache.DefaultTTL)

	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	r := gin.New()
	r.Use(gin.Recovery())

	allowOrigins := []string{config.BASE_URL}
	if config.CORS_ORIGIN != "" {
		allowOrigins = append(allowOrigins, config.CORS_ORIGIN)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-Content-Version"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Catalog: catalog,
		CMS:     cms,
		Cache:   cache,
	})

	log.Info().Str("port", config.PORT).Str("version", config.BUILD_VERSION).Msg("starting server")
	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
