package interfaces

import (
	"context"

	"autokorea/internal/domain/entities"
)

// VehicleFilter narrows List results. Zero values mean "no constraint".
type VehicleFilter struct {
	Status  entities.VehicleStatus
	Manager string
	Limit   int
}

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
//
// The CRM must be able to:
//   - create/read/update/delete vehicle records
//   - list with status/manager filters for the screens and for the
//     financial aggregator, which is always handed the full collection
type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context, filter VehicleFilter) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
