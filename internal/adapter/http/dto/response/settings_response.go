package response

import "autokorea/internal/domain/entities"

type SettingsResponse struct {
	ExchangeRate       float64            `json:"exchange_rate"`
	DeliveryTiers      map[string]float64 `json:"delivery_tiers"`
	AgeRate            float64            `json:"age_rate"`
	CustomsDutyPercent float64            `json:"customs_duty_percent"`
	VATPercent         float64            `json:"vat_percent"`
	RecyclingFee       float64            `json:"recycling_fee"`
	DisplayRate        float64            `json:"display_rate"`
}

func FromSettings(s entities.CalculatorSettings) SettingsResponse {
	return SettingsResponse{
		ExchangeRate:       s.ExchangeRate,
		DeliveryTiers:      s.DeliveryTiers,
		AgeRate:            s.AgeRate,
		CustomsDutyPercent: s.CustomsDutyPercent,
		VATPercent:         s.VATPercent,
		RecyclingFee:       s.RecyclingFee,
		DisplayRate:        s.DisplayRate,
	}
}
