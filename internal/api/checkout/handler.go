package checkout

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"

	"puntifurbi-backend/config"
	"puntifurbi-backend/internal/domain/pricing"
	stripestate "puntifurbi-backend/internal/infra/stripe"
	"puntifurbi-backend/internal/metrics"
)

type Handler struct {
	catalog *pricing.Catalog
}

func NewHandler(catalog *pricing.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// CreateSession validates the requested plan against the catalog and opens
// a hosted Stripe checkout session. The session and everything after it is
// Stripe's state; nothing is stored here.
//
// The canonical request is {plan, billing}; a bare {price_id} is also
// accepted and reverse-resolved through the catalog.
func (h *Handler) CreateSession(c *gin.Context) {
	var body struct {
		Plan    string `json:"plan"`
		Billing string `json:"billing"`
		PriceID string `json:"price_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		metrics.CheckoutSessions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if body.PriceID != "" && body.Plan == "" {
		plan, interval, ok := h.catalog.ResolveByPriceID(body.PriceID)
		if !ok {
			metrics.CheckoutSessions.WithLabelValues("invalid").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown price_id"})
			return
		}
		body.Plan, body.Billing = plan.ID, interval
	}

	if body.Plan == "" || body.Billing == "" {
		metrics.CheckoutSessions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan and billing type are required"})
		return
	}

	plan, err := h.catalog.Plan(body.Plan)
	if err != nil {
		metrics.CheckoutSessions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan or billing type"})
		return
	}
	price, err := h.catalog.PriceFor(body.Plan, body.Billing)
	if err != nil {
		metrics.CheckoutSessions.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan or billing type"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		metrics.CheckoutSessions.WithLabelValues("unconfigured").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe is not configured"})
		return
	}

	baseURL := config.BASE_URL
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(baseURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(fmt.Sprintf("%s/checkout?plan=%s&billing=%s", baseURL, body.Plan, body.Billing)),
		PaymentMethodTypes: []*string{
			stripe.String("card"),
		},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(price.StripePriceID), Quantity: stripe.Int64(1)},
		},
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				"plan":     body.Plan,
				"billing":  body.Billing,
				"planName": plan.Name,
			},
		},
	}

	// Session-level metadata travels to the webhook for reconciliation.
	params.AddMetadata("plan", body.Plan)
	params.AddMetadata("billing", body.Billing)
	params.AddMetadata("planName", plan.Name)
	params.AddMetadata("price", fmt.Sprintf("%.2f", price.Amount))

	s, err := checkoutsession.New(params)
	if err != nil {
		// No retry here: the user re-initiates from the checkout page.
		log.Error().Err(err).Str("plan", body.Plan).Str("billing", body.Billing).Msg("failed to create checkout session")
		metrics.CheckoutSessions.WithLabelValues("upstream_error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	log.Info().Str("session_id", s.ID).Str("plan", body.Plan).Str("billing", body.Billing).Msg("checkout session created")
	metrics.CheckoutSessions.WithLabelValues("created").Inc()
	c.JSON(http.StatusOK, gin.H{"sessionId": s.ID, "url": s.URL})
}

// SessionStatus looks a session up at Stripe so the success page can confirm
// the payment actually completed instead of trusting the session_id in its
// URL.
func (h *Handler) SessionStatus(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe is not configured"})
		return
	}

	s, err := checkoutsession.Get(sessionID, nil)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to fetch checkout session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch checkout session"})
		return
	}

	resp := gin.H{
		"status":        stripestate.NormalizeSessionStatus(string(s.Status), string(s.PaymentStatus)),
		"paymentStatus": string(s.PaymentStatus),
	}
	if s.Metadata != nil {
		resp["plan"] = s.Metadata["plan"]
		resp["billing"] = s.Metadata["billing"]
	}
	c.JSON(http.StatusOK, resp)
}
