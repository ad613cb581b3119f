package entities

// PricingResult is a pure derived value recomputed on demand from the draft.
// Amounts are whole naira; the formula never produces fractions.
type PricingResult struct {
	BaseRate        int64   `json:"base_rate"`
	Insurance       int64   `json:"insurance"`
	Total           int64   `json:"total"`
	EffectiveWeight float64 `json:"effective_weight"`
}
