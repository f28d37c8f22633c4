package stripe

import "strings"

// Checkout session lifecycle as this service reports it. The processor
// owns the state machine; this only normalizes its vocabulary.
const (
	SessionCreated   = "created"
	SessionCompleted = "completed"
	SessionExpired   = "expired"
	SessionCanceled  = "canceled"
)

// NormalizeSessionStatus folds Stripe's checkout session statuses into the
// lifecycle above. Unknown values pass through trimmed so nothing is lost.
func NormalizeSessionStatus(status, paymentStatus string) string {
	switch strings.TrimSpace(status) {
	case "open":
		return SessionCreated
	case "complete":
		if strings.TrimSpace(paymentStatus) == "unpaid" {
			return SessionCanceled
		}
		return SessionCompleted
	case "expired":
		return SessionExpired
	case "":
		return SessionCreated
	default:
		return strings.TrimSpace(status)
	}
}
