package response

import "smartride/internal/domain/entities"

type QuoteResponse struct {
	BaseRate        int64   `json:"base_rate"`
	Insurance       int64   `json:"insurance"`
	Total           int64   `json:"total"`
	EffectiveWeight float64 `json:"effective_weight"`
	Currency        string  `json:"currency"`
}

func FromPricingResult(p entities.PricingResult) QuoteResponse {
	return QuoteResponse{
		BaseRate:        p.BaseRate,
		Insurance:       p.Insurance,
		Total:           p.Total,
		EffectiveWeight: p.EffectiveWeight,
		Currency:        "NGN",
	}
}
