package entities

// CalculatorSettings is the admin-controlled tariff schedule the landed-cost
// calculator reads at request time.
//
// Domain notes:
//   - Singleton document: created with defaults on first read, overwritten
//     wholesale on every save. Last write wins; there is no versioning.
//   - ExchangeRate is source-currency units (KRW) per 1 USD.
//   - DisplayRate converts USD to the secondary display currency (RUB) purely
//     for presentation; it never feeds back into a cost computation.
type CalculatorSettings struct {
	ExchangeRate       float64            `json:"exchange_rate"`
	DeliveryTiers      map[string]float64 `json:"delivery_tiers"`
	AgeRate            float64            `json:"age_rate"`
	CustomsDutyPercent float64            `json:"customs_duty_percent"`
	VATPercent         float64            `json:"vat_percent"`
	RecyclingFee       float64            `json:"recycling_fee"`
	DisplayRate        float64            `json:"display_rate"`
}

const (
	DeliveryTierEconomy  = "economy"
	DeliveryTierStandard = "standard"
	DeliveryTierExpress  = "express"
)

// DefaultSettings mirrors the schedule the business started with.
func DefaultSettings() CalculatorSettings {
	return CalculatorSettings{
		ExchangeRate: 1300,
		DeliveryTiers: map[string]float64{
			DeliveryTierEconomy:  500,
			DeliveryTierStandard: 800,
			DeliveryTierExpress:  1200,
		},
		AgeRate:            50,
		CustomsDutyPercent: 15,
		VATPercent:         12,
		RecyclingFee:       3000,
		DisplayRate:        92.5,
	}
}
