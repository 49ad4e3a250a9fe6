package request

import (
	"autokorea/internal/domain/entities"
	"autokorea/internal/pricing"
)

// CalculateRequest carries one vehicle's acquisition inputs for the
// landed-cost calculator. Policy is optional; empty selects the current
// flat-rate revision.
type CalculateRequest struct {
	SourcePrice          float64 `json:"source_price" binding:"required"`
	EngineVolumeLiters   float64 `json:"engine_volume_liters"`
	EngineType           string  `json:"engine_type" binding:"required"`
	VehicleAgeYears      int     `json:"vehicle_age_years"`
	DeliveryTier         string  `json:"delivery_tier" binding:"required"`
	RepairCost           float64 `json:"repair_cost"`
	OtherCost            float64 `json:"other_cost"`
	DesiredMarginPercent float64 `json:"desired_margin_percent"`
	Policy               string  `json:"policy"`
}

func (r CalculateRequest) ToInput() pricing.CalculationInput {
	return pricing.CalculationInput{
		SourcePrice:          r.SourcePrice,
		EngineVolumeLiters:   r.EngineVolumeLiters,
		EngineType:           entities.FuelType(r.EngineType),
		VehicleAgeYears:      r.VehicleAgeYears,
		DeliveryTier:         r.DeliveryTier,
		RepairCost:           r.RepairCost,
		OtherCost:            r.OtherCost,
		DesiredMarginPercent: r.DesiredMarginPercent,
	}
}
