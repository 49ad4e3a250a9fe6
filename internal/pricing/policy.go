package pricing

import (
	"fmt"

	"autokorea/internal/domain/entities"
)

// Policy is the swappable duty/recycling rule set. Two materially different
// revisions of these rules shipped over the product's life; rather than guess
// which one is authoritative, both are kept and the caller names the one it
// wants. The VAT and age-surcharge terms are shared by Calculate itself.
type Policy interface {
	Name() string
	CustomsDuty(priceUSD float64, in CalculationInput, s entities.CalculatorSettings) float64
	RecyclingFee(in CalculationInput, s entities.CalculatorSettings) float64
	AgeCost(in CalculationInput, s entities.CalculatorSettings) float64
}

const (
	PolicyFlatRate = "flat_rate"
	PolicyTiered   = "tiered"
)

// PolicyByName resolves a policy identifier. An empty name selects the
// default flat-rate revision, the one the admin settings screen drives.
func PolicyByName(name string) (Policy, error) {
	switch name {
	case "", PolicyFlatRate:
		return FlatRatePolicy{}, nil
	case PolicyTiered:
		return TieredPolicy{}, nil
	default:
		return nil, &ConfigError{Key: fmt.Sprintf("pricing policy %q", name)}
	}
}

// FlatRatePolicy is the current rule revision: every rate comes straight from
// the tariff schedule, with no engine-volume dependence.
type FlatRatePolicy struct{}

func (FlatRatePolicy) Name() string { return PolicyFlatRate }

func (FlatRatePolicy) CustomsDuty(priceUSD float64, _ CalculationInput, s entities.CalculatorSettings) float64 {
	return priceUSD * s.CustomsDutyPercent / 100
}

func (FlatRatePolicy) RecyclingFee(_ CalculationInput, s entities.CalculatorSettings) float64 {
	return s.RecyclingFee
}

func (FlatRatePolicy) AgeCost(in CalculationInput, s entities.CalculatorSettings) float64 {
	return float64(in.VehicleAgeYears) * s.AgeRate
}

// TieredPolicy is the historical rule revision: the duty rate climbs with
// engine volume and vehicle age and drops to zero for electric vehicles, and
// the recycling fee is a display-currency base amount scaled by engine-volume
// coefficients. It predates the per-year age surcharge, so AgeCost is zero.
type TieredPolicy struct{}

func (TieredPolicy) Name() string { return PolicyTiered }

func (TieredPolicy) CustomsDuty(priceUSD float64, in CalculationInput, _ entities.CalculatorSettings) float64 {
	if in.EngineType == entities.FuelElectric {
		return 0
	}

	rate := 0.15
	switch {
	case in.EngineVolumeLiters > 3.0:
		rate += 0.05
	case in.EngineVolumeLiters > 2.0:
		rate += 0.02
	}
	switch {
	case in.VehicleAgeYears > 5:
		rate += 0.10
	case in.VehicleAgeYears > 3:
		rate += 0.05
	}
	return priceUSD * rate
}

// tieredRecyclingBase is denominated in the display currency; the historical
// schedule published it that way and converted to USD at the display rate.
const tieredRecyclingBase = 20000.0

func (TieredPolicy) RecyclingFee(in CalculationInput, s entities.CalculatorSettings) float64 {
	coefficient := 1.0
	switch {
	case in.EngineVolumeLiters > 3.5:
		coefficient = 5.73
	case in.EngineVolumeLiters > 3.0:
		coefficient = 4.5
	case in.EngineVolumeLiters > 2.0:
		coefficient = 3.2
	case in.EngineVolumeLiters > 1.0:
		coefficient = 1.84
	}
	if in.VehicleAgeYears > 3 {
		coefficient *= 1.5
	}
	return tieredRecyclingBase * coefficient / s.DisplayRate
}

func (TieredPolicy) AgeCost(CalculationInput, entities.CalculatorSettings) float64 {
	return 0
}
