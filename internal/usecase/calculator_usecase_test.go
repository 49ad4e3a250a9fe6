package usecase

import (
	"context"
	"errors"
	"testing"

	"autokorea/internal/domain/entities"
	"autokorea/internal/pricing"
	mock_interfaces "autokorea/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func calcInput() pricing.CalculationInput {
	return pricing.CalculationInput{
		SourcePrice:        13_000_000,
		EngineVolumeLiters: 1.6,
		EngineType:         entities.FuelGasoline,
		VehicleAgeYears:    2,
		DeliveryTier:       entities.DeliveryTierEconomy,
	}
}

func TestCalculatorUseCase_Calculate(t *testing.T) {
	t.Run("unknown policy rejected before reading settings", func(t *testing.T) {
		uc := NewCalculatorUseCase(nil)
		_, err := uc.Calculate(context.Background(), calcInput(), "bespoke")
		var configErr *pricing.ConfigError
		if !errors.As(err, &configErr) {
			t.Fatalf("expected ConfigError, got %v", err)
		}
	})

	t.Run("uses stored schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewCalculatorUseCase(repo)

		settings := entities.DefaultSettings()
		settings.ExchangeRate = 1000
		repo.EXPECT().Get(gomock.Any()).Return(settings, true, nil)

		b, err := uc.Calculate(context.Background(), calcInput(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.PriceUSD != 13_000 {
			t.Fatalf("expected price usd 13000 at rate 1000, got %v", b.PriceUSD)
		}
	})

	t.Run("missing document falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewCalculatorUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.CalculatorSettings{}, false, nil)

		b, err := uc.Calculate(context.Background(), calcInput(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.PriceUSD != 10_000 {
			t.Fatalf("expected price usd 10000 at default rate 1300, got %v", b.PriceUSD)
		}
	})

	t.Run("settings read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewCalculatorUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.CalculatorSettings{}, false, errors.New("db"))

		if _, err := uc.Calculate(context.Background(), calcInput(), ""); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
