package interfaces

import (
	"context"

	"autokorea/internal/domain/entities"
)

// ISettingsRepository persists the singleton calculator tariff schedule.
//
// Get reports found=false when the document does not exist yet; the use case
// substitutes defaults and lazily creates it. Save overwrites wholesale:
// last write wins, there is no partial update.
type ISettingsRepository interface {
	Get(ctx context.Context) (settings entities.CalculatorSettings, found bool, err error)
	Save(ctx context.Context, settings entities.CalculatorSettings) error
}
