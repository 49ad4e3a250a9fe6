package pricing

import (
	"math"

	"autokorea/internal/domain/entities"
)

// CalculationInput carries one vehicle's acquisition parameters.
// SourcePrice is in the source currency (KRW); repair and other costs are USD.
type CalculationInput struct {
	SourcePrice          float64
	EngineVolumeLiters   float64
	EngineType           entities.FuelType
	VehicleAgeYears      int
	DeliveryTier         string
	RepairCost           float64
	OtherCost            float64
	DesiredMarginPercent float64
}

// Breakdown exposes every intermediate of a landed-cost calculation. All
// amounts are USD except DisplayPrice, which is the recommended price in the
// secondary display currency and exists purely for presentation.
type Breakdown struct {
	PriceUSD         float64 `json:"price_usd"`
	Shipping         float64 `json:"shipping"`
	Customs          float64 `json:"customs"`
	VAT              float64 `json:"vat"`
	Recycling        float64 `json:"recycling"`
	AgeCost          float64 `json:"age_cost"`
	RepairCost       float64 `json:"repair_cost"`
	OtherCost        float64 `json:"other_cost"`
	TotalCost        float64 `json:"total_cost"`
	RecommendedPrice float64 `json:"recommended_price"`
	Profit           float64 `json:"profit"`
	DisplayPrice     float64 `json:"display_price"`
	Policy           string  `json:"policy"`
}

// Rounded returns a copy with every amount rounded to the currency minor
// unit. Rounding happens here, once, at presentation time; accumulating
// pre-rounded terms would compound the error across the seven components.
func (b Breakdown) Rounded() Breakdown {
	r := b
	r.PriceUSD = roundCents(b.PriceUSD)
	r.Shipping = roundCents(b.Shipping)
	r.Customs = roundCents(b.Customs)
	r.VAT = roundCents(b.VAT)
	r.Recycling = roundCents(b.Recycling)
	r.AgeCost = roundCents(b.AgeCost)
	r.RepairCost = roundCents(b.RepairCost)
	r.OtherCost = roundCents(b.OtherCost)
	r.TotalCost = roundCents(b.TotalCost)
	r.RecommendedPrice = roundCents(b.RecommendedPrice)
	r.Profit = roundCents(b.Profit)
	r.DisplayPrice = roundCents(b.DisplayPrice)
	return r
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Calculate computes the full cost breakdown for one vehicle under the given
// tariff snapshot and pricing policy. It is deterministic, allocates nothing
// shared, and performs no I/O: the settings snapshot is read by the caller
// once per request and never re-read mid-computation.
func Calculate(in CalculationInput, settings entities.CalculatorSettings, policy Policy) (Breakdown, error) {
	if err := validate(in, settings); err != nil {
		return Breakdown{}, err
	}
	if policy == nil {
		policy = FlatRatePolicy{}
	}

	priceUSD := in.SourcePrice / settings.ExchangeRate

	shipping, ok := settings.DeliveryTiers[in.DeliveryTier]
	if !ok {
		return Breakdown{}, &ConfigError{Key: "delivery tier " + in.DeliveryTier}
	}

	customs := policy.CustomsDuty(priceUSD, in, settings)
	vat := (priceUSD + customs) * settings.VATPercent / 100
	recycling := policy.RecyclingFee(in, settings)
	ageCost := policy.AgeCost(in, settings)

	totalCost := priceUSD + shipping + customs + vat + recycling + ageCost + in.RepairCost + in.OtherCost
	recommendedPrice := totalCost * (1 + in.DesiredMarginPercent/100)

	return Breakdown{
		PriceUSD:         priceUSD,
		Shipping:         shipping,
		Customs:          customs,
		VAT:              vat,
		Recycling:        recycling,
		AgeCost:          ageCost,
		RepairCost:       in.RepairCost,
		OtherCost:        in.OtherCost,
		TotalCost:        totalCost,
		RecommendedPrice: recommendedPrice,
		Profit:           recommendedPrice - totalCost,
		DisplayPrice:     recommendedPrice * settings.DisplayRate,
		Policy:           policy.Name(),
	}, nil
}

func validate(in CalculationInput, settings entities.CalculatorSettings) error {
	switch {
	case settings.ExchangeRate <= 0:
		return &ValidationError{Field: "exchange_rate", Reason: "must be > 0"}
	case in.SourcePrice < 0:
		return &ValidationError{Field: "source_price", Reason: "must be >= 0"}
	case in.EngineVolumeLiters <= 0 && in.EngineType != entities.FuelElectric:
		return &ValidationError{Field: "engine_volume", Reason: "must be > 0"}
	case !entities.ValidFuelType(in.EngineType):
		return &ValidationError{Field: "engine_type", Reason: "unknown value"}
	case in.VehicleAgeYears < 0:
		return &ValidationError{Field: "vehicle_age_years", Reason: "must be >= 0"}
	case in.RepairCost < 0:
		return &ValidationError{Field: "repair_cost", Reason: "must be >= 0"}
	case in.OtherCost < 0:
		return &ValidationError{Field: "other_cost", Reason: "must be >= 0"}
	case in.DesiredMarginPercent < 0:
		return &ValidationError{Field: "desired_margin_percent", Reason: "must be >= 0"}
	}
	return nil
}
