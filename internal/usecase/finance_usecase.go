package usecase

import (
	"context"
	"time"

	"autokorea/internal/finance"
	"autokorea/internal/usecase/interfaces"
)

// IFinanceUseCase serves the finance and reports screens. Each call loads the
// vehicle collection once and runs the pure derivations over that snapshot.
type IFinanceUseCase interface {
	Transactions(ctx context.Context) (finance.TransactionsResult, error)
	MonthlySeries(ctx context.Context, months int) (finance.SeriesResult, error)
	Totals(ctx context.Context) (finance.Totals, error)
}

type FinanceUseCase struct {
	vehicleRepo interfaces.IVehicleRepository
	now         func() time.Time
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(vehicleRepo interfaces.IVehicleRepository) *FinanceUseCase {
	return &FinanceUseCase{vehicleRepo: vehicleRepo, now: time.Now}
}

func (u *FinanceUseCase) Transactions(ctx context.Context) (finance.TransactionsResult, error) {
	vehicles, err := u.vehicleRepo.List(ctx, interfaces.VehicleFilter{})
	if err != nil {
		return finance.TransactionsResult{}, err
	}
	return finance.DeriveTransactions(vehicles, u.now().UTC()), nil
}

func (u *FinanceUseCase) MonthlySeries(ctx context.Context, months int) (finance.SeriesResult, error) {
	vehicles, err := u.vehicleRepo.List(ctx, interfaces.VehicleFilter{})
	if err != nil {
		return finance.SeriesResult{}, err
	}
	return finance.DeriveMonthlySeries(vehicles, months), nil
}

func (u *FinanceUseCase) Totals(ctx context.Context) (finance.Totals, error) {
	vehicles, err := u.vehicleRepo.List(ctx, interfaces.VehicleFilter{})
	if err != nil {
		return finance.Totals{}, err
	}
	return finance.DeriveFinancialTotals(vehicles), nil
}
