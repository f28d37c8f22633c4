package plans

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"puntifurbi-backend/internal/domain/pricing"
)

type Handler struct {
	catalog *pricing.Catalog
}

func NewHandler(catalog *pricing.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// List serves the full plan catalog. The checkout UI renders from this, and
// the session endpoint validates against the same catalog instance, so the
// two can never disagree on a price.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.catalog.Plans()})
}
