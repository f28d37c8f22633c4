package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ContentFetches counts outbound content-API calls by operation
	// (posts, post_by_slug, related) and outcome (ok, empty, unavailable,
	// malformed, rejected).
	ContentFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "content_fetch_total",
		Help: "Outbound content API fetches by operation and outcome.",
	}, []string{"operation", "outcome"})

	// CheckoutSessions counts checkout session creations by outcome
	// (created, invalid, unconfigured, upstream_error).
	CheckoutSessions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_sessions_total",
		Help: "Checkout session creation attempts by outcome.",
	}, []string{"outcome"})

	// WebhookEvents counts received Stripe webhook events by type and
	// outcome (handled, ignored, invalid).
	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_events_total",
		Help: "Stripe webhook events by type and outcome.",
	}, []string{"type", "outcome"})
)
