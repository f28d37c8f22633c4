package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogPrices(t *testing.T) {
	c := Default()

	tests := []struct {
		plan     string
		interval string
		amount   float64
		priceID  string
	}{
		{PlanPremium, IntervalMonthly, 4.90, "price_Premium_Monthly_490"},
		{PlanPremium, IntervalYearly, 49.90, "price_Premium_Yearly_4990"},
		{PlanElite, IntervalMonthly, 19.90, "price_Elite_Monthly_1990"},
		{PlanElite, IntervalYearly, 199.90, "price_Elite_Yearly_19990"},
	}

	for _, tt := range tests {
		t.Run(tt.plan+"_"+tt.interval, func(t *testing.T) {
			pp, err := c.PriceFor(tt.plan, tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.amount, pp.Amount)
			assert.Equal(t, "EUR", pp.Currency)
			assert.Equal(t, tt.priceID, pp.StripePriceID)
		})
	}
}

func TestResolveByPriceIDIsLeftInverse(t *testing.T) {
	c := Default()

	for _, plan := range c.Plans() {
		for _, interval := range []string{IntervalMonthly, IntervalYearly} {
			pp, err := c.PriceFor(plan.ID, interval)
			require.NoError(t, err)

			resolved, resolvedInterval, ok := c.ResolveByPriceID(pp.StripePriceID)
			require.True(t, ok, "price id %s not resolvable", pp.StripePriceID)
			assert.Equal(t, plan.ID, resolved.ID)
			assert.Equal(t, interval, resolvedInterval)
		}
	}
}

func TestResolveByPriceIDUnknown(t *testing.T) {
	_, _, ok := Default().ResolveByPriceID("price_nope")
	assert.False(t, ok)
}

func TestInvalidInputs(t *testing.T) {
	c := Default()

	_, err := c.PriceFor("platinum", IntervalMonthly)
	assert.ErrorIs(t, err, ErrInvalidPlan)

	_, err = c.PriceFor(PlanPremium, "weekly")
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = c.FeaturesFor("platinum")
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestFeaturesOrderPreserved(t *testing.T) {
	c := Default()

	features, err := c.FeaturesFor(PlanElite)
	require.NoError(t, err)
	require.Len(t, features, 7)
	assert.Equal(t, "Tutto il piano Premium", features[0])
	assert.Equal(t, "Consigli su status, carte e strategie travel hacking", features[6])
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	mk := func(id, m, y string) Plan {
		return Plan{
			ID:      id,
			Name:    id,
			Monthly: PricePoint{Amount: 1, Currency: "EUR", StripePriceID: m},
			Yearly:  PricePoint{Amount: 10, Currency: "EUR", StripePriceID: y},
		}
	}

	_, err := NewCatalog(mk("a", "p1", "p2"), mk("a", "p3", "p4"))
	assert.Error(t, err)

	_, err = NewCatalog(mk("a", "p1", "p2"), mk("b", "p1", "p4"))
	assert.Error(t, err)

	_, err = NewCatalog(Plan{ID: "a", Monthly: PricePoint{StripePriceID: "p1"}})
	assert.Error(t, err)
}
