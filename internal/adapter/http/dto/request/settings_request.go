package request

import "autokorea/internal/domain/entities"

// SettingsRequest is the full tariff schedule; the admin screen always
// submits every field and the save overwrites wholesale.
type SettingsRequest struct {
	ExchangeRate       float64            `json:"exchange_rate" binding:"required"`
	DeliveryTiers      map[string]float64 `json:"delivery_tiers" binding:"required"`
	AgeRate            float64            `json:"age_rate"`
	CustomsDutyPercent float64            `json:"customs_duty_percent"`
	VATPercent         float64            `json:"vat_percent"`
	RecyclingFee       float64            `json:"recycling_fee"`
	DisplayRate        float64            `json:"display_rate"`
}

func (r SettingsRequest) ToEntity() entities.CalculatorSettings {
	return entities.CalculatorSettings{
		ExchangeRate:       r.ExchangeRate,
		DeliveryTiers:      r.DeliveryTiers,
		AgeRate:            r.AgeRate,
		CustomsDutyPercent: r.CustomsDutyPercent,
		VATPercent:         r.VATPercent,
		RecyclingFee:       r.RecyclingFee,
		DisplayRate:        r.DisplayRate,
	}
}
