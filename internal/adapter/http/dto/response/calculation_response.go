package response

import "autokorea/internal/pricing"

// CalculationResponse is the presentation form of a cost breakdown: every
// amount rounded once to the currency minor unit. Formatting into currency
// strings stays with the consumer.
type CalculationResponse struct {
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

func FromBreakdown(b pricing.Breakdown) CalculationResponse {
	r := b.Rounded()
	return CalculationResponse{
		PriceUSD:         r.PriceUSD,
		Shipping:         r.Shipping,
		Customs:          r.Customs,
		VAT:              r.VAT,
		Recycling:        r.Recycling,
		AgeCost:          r.AgeCost,
		RepairCost:       r.RepairCost,
		OtherCost:        r.OtherCost,
		TotalCost:        r.TotalCost,
		RecommendedPrice: r.RecommendedPrice,
		Profit:           r.Profit,
		DisplayPrice:     r.DisplayPrice,
		Policy:           r.Policy,
	}
}
