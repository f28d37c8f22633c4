package pricing

import (
	"errors"
	"fmt"
)

// Plan identifiers (single source of truth).
const (
	PlanPremium = "premium"
	PlanElite   = "elite"
)

// Billing intervals.
const (
	IntervalMonthly = "monthly"
	IntervalYearly  = "yearly"
)

var (
	ErrInvalidPlan     = errors.New("invalid plan")
	ErrInvalidInterval = errors.New("invalid billing interval")
)

// PricePoint is the amount, currency and Stripe price id for one plan at
// one billing interval.
type PricePoint struct {
	Amount        float64 `json:"price"`
	Currency      string  `json:"currency"`
	StripePriceID string  `json:"price_id"`
}

// Plan is a subscription tier with its display metadata, feature list
// (display order significant) and one price point per interval.
type Plan struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Color    string     `json:"color"`
	Features []string   `json:"features"`
	Monthly  PricePoint `json:"monthly"`
	Yearly   PricePoint `json:"yearly"`
}

// Catalog is the read-only plan table. It is built once at startup and
// injected into every consumer, so the checkout endpoint and the public
// listing can never disagree on a price.
type Catalog struct {
	plans map[string]Plan
	order []string
}

// NewCatalog validates and freezes a plan table. Every plan must carry a
// Stripe price id for both intervals, and price ids must be unique across
// the whole table (they are used for reverse lookup from webhooks).
func NewCatalog(plans ...Plan) (*Catalog, error) {
	c := &Catalog{plans: make(map[string]Plan, len(plans))}
	seen := make(map[string]string)

	for _, p := range plans {
		if p.ID == "" {
			return nil, errors.New("plan with empty id")
		}
		if _, dup := c.plans[p.ID]; dup {
			return nil, fmt.Errorf("duplicate plan id %q", p.ID)
		}
		for _, pp := range []PricePoint{p.Monthly, p.Yearly} {
			if pp.StripePriceID == "" {
				return nil, fmt.Errorf("plan %q missing a price id", p.ID)
			}
			if owner, dup := seen[pp.StripePriceID]; dup {
				return nil, fmt.Errorf("price id %q shared by plans %q and %q", pp.StripePriceID, owner, p.ID)
			}
			seen[pp.StripePriceID] = p.ID
		}
		c.plans[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c, nil
}

// Plan returns the plan for id, or ErrInvalidPlan.
func (c *Catalog) Plan(id string) (Plan, error) {
	p, ok := c.plans[id]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %q", ErrInvalidPlan, id)
	}
	return p, nil
}

// PriceFor resolves (plan, interval) to its price point.
func (c *Catalog) PriceFor(plan, interval string) (PricePoint, error) {
	p, err := c.Plan(plan)
	if err != nil {
		return PricePoint{}, err
	}
	switch interval {
	case IntervalMonthly:
		return p.Monthly, nil
	case IntervalYearly:
		return p.Yearly, nil
	default:
		return PricePoint{}, fmt.Errorf("%w: %q", ErrInvalidInterval, interval)
	}
}

// FeaturesFor returns the ordered feature list for a plan.
func (c *Catalog) FeaturesFor(plan string) ([]string, error) {
	p, err := c.Plan(plan)
	if err != nil {
		return nil, err
	}
	return p.Features, nil
}

// ResolveByPriceID translates a Stripe price id back into (plan, interval).
// Linear scan over both intervals of every plan; at two plans and two
// intervals a secondary index buys nothing.
func (c *Catalog) ResolveByPriceID(priceID string) (Plan, string, bool) {
	for _, id := range c.order {
		p := c.plans[id]
		if p.Monthly.StripePriceID == priceID {
			return p, IntervalMonthly, true
		}
		if p.Yearly.StripePriceID == priceID {
			return p, IntervalYearly, true
		}
	}
	return Plan{}, "", false
}

// Plans returns every plan in declaration order.
func (c *Catalog) Plans() []Plan {
	out := make([]Plan, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.plans[id])
	}
	return out
}
