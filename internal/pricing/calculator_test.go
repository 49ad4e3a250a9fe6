package pricing

import (
	"errors"
	"testing"

	"autokorea/internal/domain/entities"
)

func baseInput() CalculationInput {
	return CalculationInput{
		SourcePrice:          25_000_000,
		EngineVolumeLiters:   2.0,
		EngineType:           entities.FuelGasoline,
		VehicleAgeYears:      1,
		DeliveryTier:         entities.DeliveryTierStandard,
		RepairCost:           200,
		OtherCost:            0,
		DesiredMarginPercent: 15,
	}
}

func TestCalculate_FlatRateBreakdown(t *testing.T) {
	got, err := Calculate(baseInput(), entities.DefaultSettings(), FlatRatePolicy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := got.Rounded()

	if r.PriceUSD != 19230.77 {
		t.Fatalf("expected price usd 19230.77, got %v", r.PriceUSD)
	}
	if r.Shipping != 800 {
		t.Fatalf("expected shipping 800, got %v", r.Shipping)
	}
	if r.Customs != 2884.62 {
		t.Fatalf("expected customs 2884.62, got %v", r.Customs)
	}
	if r.VAT != 2653.85 {
		t.Fatalf("expected vat 2653.85, got %v", r.VAT)
	}
	if r.Recycling != 3000 {
		t.Fatalf("expected recycling 3000, got %v", r.Recycling)
	}
	if r.AgeCost != 50 {
		t.Fatalf("expected age cost 50, got %v", r.AgeCost)
	}
	if r.TotalCost != 28819.23 {
		t.Fatalf("expected total cost 28819.23, got %v", r.TotalCost)
	}
	if r.RecommendedPrice != 33142.12 {
		t.Fatalf("expected recommended price 33142.12, got %v", r.RecommendedPrice)
	}
	if r.Profit != 4322.88 {
		t.Fatalf("expected profit 4322.88, got %v", r.Profit)
	}
	if r.Policy != PolicyFlatRate {
		t.Fatalf("expected policy %q, got %q", PolicyFlatRate, r.Policy)
	}
}

func TestCalculate_Determinism(t *testing.T) {
	settings := entities.DefaultSettings()
	first, err := Calculate(baseInput(), settings, FlatRatePolicy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Calculate(baseInput(), settings, FlatRatePolicy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("identical inputs produced different breakdowns: %+v vs %+v", first, second)
	}
}

func TestCalculate_TotalIsSumOfComponents(t *testing.T) {
	b, err := Calculate(baseInput(), entities.DefaultSettings(), FlatRatePolicy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := b.PriceUSD + b.Shipping + b.Customs + b.VAT + b.Recycling + b.AgeCost + b.RepairCost + b.OtherCost
	if b.TotalCost != sum {
		t.Fatalf("total cost %v is not the component sum %v", b.TotalCost, sum)
	}
	if b.Profit != b.RecommendedPrice-b.TotalCost {
		t.Fatalf("profit %v does not match recommended-total %v", b.Profit, b.RecommendedPrice-b.TotalCost)
	}
}

func TestCalculate_ZeroMargin(t *testing.T) {
	in := baseInput()
	in.DesiredMarginPercent = 0

	b, err := Calculate(in, entities.DefaultSettings(), FlatRatePolicy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.RecommendedPrice != b.TotalCost {
		t.Fatalf("zero margin should price at cost: got %v vs %v", b.RecommendedPrice, b.TotalCost)
	}
	if b.Profit != 0 {
		t.Fatalf("expected zero profit, got %v", b.Profit)
	}
}

func TestCalculate_UnknownDeliveryTier(t *testing.T) {
	in := baseInput()
	in.DeliveryTier = "teleport"

	_, err := Calculate(in, entities.DefaultSettings(), FlatRatePolicy{})
	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestCalculate_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CalculationInput, *entities.CalculatorSettings)
	}{
		{"zero exchange rate", func(_ *CalculationInput, s *entities.CalculatorSettings) { s.ExchangeRate = 0 }},
		{"negative source price", func(in *CalculationInput, _ *entities.CalculatorSettings) { in.SourcePrice = -1 }},
		{"zero engine volume", func(in *CalculationInput, _ *entities.CalculatorSettings) { in.EngineVolumeLiters = 0 }},
		{"unknown engine type", func(in *CalculationInput, _ *entities.CalculatorSettings) { in.EngineType = "steam" }},
		{"negative age", func(in *CalculationInput, _ *entities.CalculatorSettings) { in.VehicleAgeYears = -1 }},
		{"negative repair cost", func(in *CalculationInput, _ *entities.CalculatorSettings) { in.RepairCost = -5 }},
		{"negative margin", func(in *CalculationInput, _ *entities.CalculatorSettings) { in.DesiredMarginPercent = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := baseInput()
			settings := entities.DefaultSettings()
			tc.mutate(&in, &settings)

			got, err := Calculate(in, settings, FlatRatePolicy{})
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if got != (Breakdown{}) {
				t.Fatalf("expected zero breakdown on error, got %+v", got)
			}
		})
	}
}

func TestCalculate_ElectricSkipsEngineVolumeCheck(t *testing.T) {
	in := baseInput()
	in.EngineType = entities.FuelElectric
	in.EngineVolumeLiters = 0

	if _, err := Calculate(in, entities.DefaultSettings(), FlatRatePolicy{}); err != nil {
		t.Fatalf("unexpected error for electric vehicle: %v", err)
	}
}
