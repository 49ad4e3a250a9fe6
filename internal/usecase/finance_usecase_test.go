package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase/interfaces"
	mock_interfaces "autokorea/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestFinanceUseCase_Transactions(t *testing.T) {
	t.Run("derives the ledger with a pinned fallback date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewFinanceUseCase(repo)
		fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().List(gomock.Any(), interfaces.VehicleFilter{}).Return([]entities.Vehicle{
			{ID: "v-1", PurchasePrice: 10_000},
		}, nil)

		res, err := uc.Transactions(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Transactions) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(res.Transactions))
		}
		if !res.Transactions[0].Date.Equal(fixed) {
			t.Fatalf("expected fallback date %v, got %v", fixed, res.Transactions[0].Date)
		}
		if res.FallbackDated != 1 {
			t.Fatalf("expected 1 fallback-dated transaction, got %d", res.FallbackDated)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewFinanceUseCase(repo)

		repo.EXPECT().List(gomock.Any(), interfaces.VehicleFilter{}).Return(nil, errors.New("db"))

		if _, err := uc.Transactions(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestFinanceUseCase_Totals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
	uc := NewFinanceUseCase(repo)

	repo.EXPECT().List(gomock.Any(), interfaces.VehicleFilter{}).Return([]entities.Vehicle{
		{Status: entities.VehicleStatusSold, PurchasePrice: 10_000, SellingPrice: 14_000},
		{Status: entities.VehicleStatusInStock, PurchasePrice: 8_000},
	}, nil)

	totals, err := uc.Totals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.TotalRevenue != 14_000 {
		t.Fatalf("expected revenue 14000, got %v", totals.TotalRevenue)
	}
	if totals.TotalExpenses != 18_000 {
		t.Fatalf("expected expenses 18000, got %v", totals.TotalExpenses)
	}
	if totals.NetProfit != -4_000 {
		t.Fatalf("expected net profit -4000, got %v", totals.NetProfit)
	}
}

func TestFinanceUseCase_MonthlySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
	uc := NewFinanceUseCase(repo)

	sold := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().List(gomock.Any(), interfaces.VehicleFilter{}).Return([]entities.Vehicle{
		{Status: entities.VehicleStatusSold, SellingPrice: 12_000, SoldDate: &sold},
	}, nil)

	res, err := uc.MonthlySeries(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Months) != 1 || res.Months[0].Month != "2024-03" {
		t.Fatalf("unexpected series %+v", res.Months)
	}
}
