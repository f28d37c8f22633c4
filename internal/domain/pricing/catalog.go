package pricing

// Default returns the canonical plan table. Prices are what Stripe charges;
// a yearly price is a marketing discount, not 12x monthly.
func Default() *Catalog {
	c, err := NewCatalog(
		Plan{
			ID:    PlanPremium,
			Name:  "Premium",
			Color: "#483cff",
			Features: []string{
				"Tutte le offerte Economy e Premium Economy",
				"Offerte esclusive in Business e First Class",
				"Segnalazioni di tariffe error fare premium",
				"Supporto via email prioritario",
				"Accesso a offerte riservate",
			},
			Monthly: PricePoint{Amount: 4.90, Currency: "EUR", StripePriceID: "price_Premium_Monthly_490"},
			Yearly:  PricePoint{Amount: 49.90, Currency: "EUR", StripePriceID: "price_Premium_Yearly_4990"},
		},
		Plan{
			ID:    PlanElite,
			Name:  "Elite",
			Color: "#483cff",
			Features: []string{
				"Tutto il piano Premium",
				"Concierge personale",
				"Servizi premium di travel hacking",
				"Ricerca personalizzata con punti e miglia",
				"1 consulenza personalizzata al mese",
				"Accesso anticipato a tutte le offerte",
				"Consigli su status, carte e strategie travel hacking",
			},
			Monthly: PricePoint{Amount: 19.90, Currency: "EUR", StripePriceID: "price_Elite_Monthly_1990"},
			Yearly:  PricePoint{Amount: 199.90, Currency: "EUR", StripePriceID: "price_Elite_Yearly_19990"},
		},
	)
	if err != nil {
		// The table above is a compile-time constant in all but syntax;
		// a validation failure here is a programming error.
		panic(err)
	}
	return c
}
