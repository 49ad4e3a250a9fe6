package usecase

import (
	"context"
	"errors"
	"fmt"

	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase/interfaces"
)

var ErrInvalidSettings = errors.New("invalid calculator settings")

// ISettingsUseCase manages the singleton tariff schedule.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.CalculatorSettings, error)
	Save(ctx context.Context, s entities.CalculatorSettings) (entities.CalculatorSettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get returns the stored schedule, creating the document with defaults the
// first time anyone asks for it.
func (u *SettingsUseCase) Get(ctx context.Context) (entities.CalculatorSettings, error) {
	s, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.CalculatorSettings{}, err
	}
	if !found {
		s = entities.DefaultSettings()
		if err := u.repo.Save(ctx, s); err != nil {
			return entities.CalculatorSettings{}, err
		}
	}
	return s, nil
}

// Save overwrites the schedule wholesale after validation. Partial updates
// are deliberately unsupported; the admin screen always submits the full form.
func (u *SettingsUseCase) Save(ctx context.Context, s entities.CalculatorSettings) (entities.CalculatorSettings, error) {
	if err := validateSettings(s); err != nil {
		return entities.CalculatorSettings{}, err
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return entities.CalculatorSettings{}, err
	}
	return s, nil
}

func validateSettings(s entities.CalculatorSettings) error {
	switch {
	case s.ExchangeRate <= 0:
		return fmt.Errorf("%w: exchange rate must be > 0", ErrInvalidSettings)
	case s.DisplayRate <= 0:
		return fmt.Errorf("%w: display rate must be > 0", ErrInvalidSettings)
	case s.CustomsDutyPercent < 0 || s.CustomsDutyPercent > 100:
		return fmt.Errorf("%w: customs duty percent must be within 0-100", ErrInvalidSettings)
	case s.VATPercent < 0 || s.VATPercent > 100:
		return fmt.Errorf("%w: vat percent must be within 0-100", ErrInvalidSettings)
	case s.AgeRate < 0:
		return fmt.Errorf("%w: age rate must be >= 0", ErrInvalidSettings)
	case s.RecyclingFee < 0:
		return fmt.Errorf("%w: recycling fee must be >= 0", ErrInvalidSettings)
	case len(s.DeliveryTiers) == 0:
		return fmt.Errorf("%w: at least one delivery tier is required", ErrInvalidSettings)
	}
	for tier, price := range s.DeliveryTiers {
		if price < 0 {
			return fmt.Errorf("%w: delivery tier %q must be >= 0", ErrInvalidSettings, tier)
		}
	}
	return nil
}
