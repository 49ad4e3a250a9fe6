package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"autokorea/internal/domain/entities"
	mock_interfaces "autokorea/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_Get(t *testing.T) {
	t.Run("returns stored schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		stored := entities.DefaultSettings()
		stored.ExchangeRate = 1350
		repo.EXPECT().Get(gomock.Any()).Return(stored, true, nil)

		got, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, stored) {
			t.Fatalf("expected %+v, got %+v", stored, got)
		}
	})

	t.Run("first read creates defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.CalculatorSettings{}, false, nil)
		repo.EXPECT().Save(gomock.Any(), entities.DefaultSettings()).Return(nil)

		got, err := uc.Get(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, entities.DefaultSettings()) {
			t.Fatalf("expected defaults, got %+v", got)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.CalculatorSettings{}, false, errors.New("db"))

		if _, err := uc.Get(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSettingsUseCase_Save(t *testing.T) {
	t.Run("valid schedule persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSettingsUseCase(repo)

		s := entities.DefaultSettings()
		s.VATPercent = 10
		repo.EXPECT().Save(gomock.Any(), s).Return(nil)

		got, err := uc.Save(context.Background(), s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.VATPercent != 10 {
			t.Fatalf("expected the saved schedule back, got %+v", got)
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*entities.CalculatorSettings)
		}{
			{"zero exchange rate", func(s *entities.CalculatorSettings) { s.ExchangeRate = 0 }},
			{"zero display rate", func(s *entities.CalculatorSettings) { s.DisplayRate = 0 }},
			{"duty over 100", func(s *entities.CalculatorSettings) { s.CustomsDutyPercent = 101 }},
			{"negative vat", func(s *entities.CalculatorSettings) { s.VATPercent = -1 }},
			{"negative age rate", func(s *entities.CalculatorSettings) { s.AgeRate = -1 }},
			{"negative recycling fee", func(s *entities.CalculatorSettings) { s.RecyclingFee = -1 }},
			{"no delivery tiers", func(s *entities.CalculatorSettings) { s.DeliveryTiers = nil }},
			{"negative tier price", func(s *entities.CalculatorSettings) {
				s.DeliveryTiers = map[string]float64{"economy": -5}
			}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewSettingsUseCase(nil)
				s := entities.DefaultSettings()
				tc.mutate(&s)

				_, err := uc.Save(context.Background(), s)
				if !errors.Is(err, ErrInvalidSettings) {
					t.Fatalf("expected ErrInvalidSettings, got %v", err)
				}
			})
		}
	})
}
