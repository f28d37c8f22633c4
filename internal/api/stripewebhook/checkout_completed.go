package stripewebhook

import (
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"

	"puntifurbi-backend/config"
)

// handleCheckoutCompleted reconciles a completed session against the plan
// catalog and logs the result. Stripe owns all subscription state; this
// side keeps nothing, so reconciliation is verification plus an audit line.
func (h *Handler) handleCheckoutCompleted(session *stripe.CheckoutSession) {
	logger := log.With().Str("session_id", session.ID).Logger()

	priceID := ""
	if config.STRIPE_SECRET_KEY != "" {
		stripe.Key = config.STRIPE_SECRET_KEY
		full, err := checkoutsession.Get(session.ID, &stripe.CheckoutSessionParams{
			Params: stripe.Params{
				Expand: []*string{stripe.String("line_items")},
			},
		})
		if err != nil {
			logger.Error().Err(err).Msg("failed to fetch expanded checkout session")
		} else if full.LineItems != nil && len(full.LineItems.Data) > 0 && full.LineItems.Data[0].Price != nil {
			priceID = full.LineItems.Data[0].Price.ID
		}
	}

	if priceID != "" {
		plan, interval, ok := h.catalog.ResolveByPriceID(priceID)
		if !ok {
			logger.Warn().Str("price_id", priceID).Msg("completed session references a price outside the catalog")
			return
		}
		logger.Info().
			Str("plan", plan.ID).
			Str("billing", interval).
			Str("price_id", priceID).
			Str("payment_status", string(session.PaymentStatus)).
			Msg("checkout session completed")
		return
	}

	// Fall back to the metadata bag the create-session endpoint attached.
	plan, billing := "", ""
	if session.Metadata != nil {
		plan = session.Metadata["plan"]
		billing = session.Metadata["billing"]
	}
	if plan == "" {
		logger.Warn().Msg("completed session carries no resolvable plan")
		return
	}
	if _, err := h.catalog.PriceFor(plan, billing); err != nil {
		logger.Warn().Str("plan", plan).Str("billing", billing).Err(err).Msg("completed session metadata does not match the catalog")
		return
	}
	logger.Info().
		Str("plan", plan).
		Str("billing", billing).
		Str("payment_status", string(session.PaymentStatus)).
		Msg("checkout session completed")
}
