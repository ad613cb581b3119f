package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"smartride/internal/domain/entities"
)

// Pricing constants. User-facing and load-bearing: the quote shown on the
// summary step must match what the gateway later charges.
const (
	pricingBaseFare     int64 = 500
	pricingRatePerKg    int64 = 200
	insuranceRate             = 0.01
	insuranceMinimum    int64 = 200
	defaultSizeScale          = 100
	minSizeScale              = 70
	maxSizeScale              = 130
)

// Per-category default weights in kg, used when no explicit weight is given.
var defaultWeights = map[entities.WeightCategory]float64{
	entities.WeightLight:     2.5,
	entities.WeightHeavy:     12.5,
	entities.WeightVeryHeavy: 25,
}

// Base cube edge in cm per size category, scaled by the draft's sizeScale.
var baseDimensions = map[entities.SizeCategory]int{
	entities.SizeSmall:   30,
	entities.SizeBig:     60,
	entities.SizeVeryBig: 100,
}

// IPricingUseCase computes quotes and derived dimensions for a draft.

type IPricingUseCase interface {
	Quote(draft entities.BookingDraft) entities.PricingResult
	Dimensions(draft entities.BookingDraft) string
}

type PricingUseCase struct{}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase() *PricingUseCase {
	return &PricingUseCase{}
}

// Quote derives the price for the current draft. An explicit positive weight
// overrides the category default; the weight multiplier is ceiled, insurance
// is rounded with a floor of the minimum premium.
func (u *PricingUseCase) Quote(draft entities.BookingDraft) entities.PricingResult {
	weight := effectiveWeight(draft)
	weightCharge := int64(math.Ceil(weight)) * pricingRatePerKg
	baseRate := pricingBaseFare + weightCharge

	var insurance int64
	if draft.DeclaredValue > 0 {
		insurance = int64(math.Round(draft.DeclaredValue * insuranceRate))
		if insurance < insuranceMinimum {
			insurance = insuranceMinimum
		}
	}

	return entities.PricingResult{
		BaseRate:        baseRate,
		Insurance:       insurance,
		Total:           baseRate + insurance,
		EffectiveWeight: weight,
	}
}

// Dimensions renders the human-readable package dimensions for the draft's
// size category at its current scale.
func (u *PricingUseCase) Dimensions(draft entities.BookingDraft) string {
	base, ok := baseDimensions[draft.SizeCategory]
	if !ok {
		base = baseDimensions[entities.SizeSmall]
	}

	scale := draft.SizeScale
	if scale == 0 {
		scale = defaultSizeScale
	}

	edge := int(math.Round(float64(base) * float64(scale) / 100))
	return fmt.Sprintf("%d×%d×%d cm", edge, edge, edge)
}

func effectiveWeight(draft entities.BookingDraft) float64 {
	if w := strings.TrimSpace(draft.ExplicitWeight); w != "" {
		if parsed, err := strconv.ParseFloat(w, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	if w, ok := defaultWeights[draft.WeightCategory]; ok {
		return w
	}
	return defaultWeights[entities.WeightLight]
}
