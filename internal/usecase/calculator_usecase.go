package usecase

import (
	"context"

	"autokorea/internal/domain/entities"
	"autokorea/internal/pricing"
	"autokorea/internal/usecase/interfaces"
)

// ICalculatorUseCase runs the landed-cost calculator against the current
// tariff schedule.
type ICalculatorUseCase interface {
	Calculate(ctx context.Context, in pricing.CalculationInput, policyName string) (pricing.Breakdown, error)
}

type CalculatorUseCase struct {
	settingsRepo interfaces.ISettingsRepository
}

var _ ICalculatorUseCase = (*CalculatorUseCase)(nil)

func NewCalculatorUseCase(settingsRepo interfaces.ISettingsRepository) *CalculatorUseCase {
	return &CalculatorUseCase{settingsRepo: settingsRepo}
}

// Calculate reads the settings snapshot exactly once and hands it to the pure
// calculator, so a concurrent settings save can never leak a mix of old and
// new rates into a single breakdown.
func (u *CalculatorUseCase) Calculate(ctx context.Context, in pricing.CalculationInput, policyName string) (pricing.Breakdown, error) {
	policy, err := pricing.PolicyByName(policyName)
	if err != nil {
		return pricing.Breakdown{}, err
	}

	settings, found, err := u.settingsRepo.Get(ctx)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	if !found {
		settings = entities.DefaultSettings()
	}

	return pricing.Calculate(in, settings, policy)
}
