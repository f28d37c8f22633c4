package stripewebhook

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/webhook"

	"puntifurbi-backend/config"
	"puntifurbi-backend/internal/domain/pricing"
	"puntifurbi-backend/internal/metrics"
)

const maxBodyBytes = 65536

type Handler struct {
	catalog *pricing.Catalog
}

func NewHandler(catalog *pricing.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Handle receives Stripe webhook deliveries. Signature verification is
// mandatory; with no webhook secret configured the endpoint reports itself
// unconfigured rather than accepting unverified events.
func (h *Handler) Handle(c *gin.Context) {
	endpointSecret := config.STRIPE_WEBHOOK_SECRET
	if endpointSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		log.Warn().Err(err).Msg("stripe signature verification failed")
		metrics.WebhookEvents.WithLabelValues("unknown", "invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			metrics.WebhookEvents.WithLabelValues(string(event.Type), "invalid").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse session"})
			return
		}
		h.handleCheckoutCompleted(&session)
		metrics.WebhookEvents.WithLabelValues(string(event.Type), "handled").Inc()
		c.JSON(http.StatusOK, gin.H{"status": "received"})

	default:
		// Acknowledge unknown events to avoid retries.
		metrics.WebhookEvents.WithLabelValues(string(event.Type), "ignored").Inc()
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	}
}
