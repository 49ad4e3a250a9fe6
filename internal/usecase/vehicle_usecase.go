package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrVehicleNotFound         = errors.New("vehicle not found")
	ErrInvalidVehicleID        = errors.New("invalid vehicle id")
	ErrInvalidVehicle          = errors.New("invalid vehicle")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidSellingPrice     = errors.New("invalid selling price")
)

// IVehicleUseCase exposes the vehicle lifecycle operations behind every CRM
// screen: intake, the pipeline board, the car detail editor and the sale flow.
type IVehicleUseCase interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context, filter interfaces.VehicleFilter) ([]entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle, adminOverride bool) (entities.Vehicle, error)
	MarkSold(ctx context.Context, id string, sellingPrice float64, soldDate time.Time) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo interfaces.IVehicleRepository
	log  *logrus.Logger
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, log *logrus.Logger) *VehicleUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &VehicleUseCase{repo: repo, log: log}
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.VIN = strings.TrimSpace(v.VIN)
	if err := validateVehicle(v); err != nil {
		return entities.Vehicle{}, err
	}

	if v.Status == "" {
		v.Status = entities.VehicleStatusInKorea
	}
	v.Status = entities.ParseVehicleStatus(string(v.Status))
	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()

	created, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	u.log.WithFields(logrus.Fields{"vehicle_id": created.ID, "vin": created.VIN}).Info("vehicle created")
	return created, nil
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context, filter interfaces.VehicleFilter) ([]entities.Vehicle, error) {
	return u.repo.List(ctx, filter)
}

// Update overwrites the stored record wholesale. A status change must follow
// the lifecycle order unless adminOverride is set, in which case any move
// between known stages is allowed and logged.
func (u *VehicleUseCase) Update(ctx context.Context, v entities.Vehicle, adminOverride bool) (entities.Vehicle, error) {
	v.ID = strings.TrimSpace(v.ID)
	if v.ID == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if err := validateVehicle(v); err != nil {
		return entities.Vehicle{}, err
	}

	current, err := u.repo.GetByID(ctx, v.ID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if current.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}

	v.Status = entities.ParseVehicleStatus(string(v.Status))
	if v.Status != current.Status {
		switch {
		case entities.CanTransition(current.Status, v.Status):
		case adminOverride && entities.CanTransitionAdmin(current.Status, v.Status):
			u.log.WithFields(logrus.Fields{
				"vehicle_id": v.ID,
				"from":       current.Status,
				"to":         v.Status,
			}).Warn("admin status override")
		default:
			return entities.Vehicle{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, v.Status)
		}
	}

	v.CreatedAt = current.CreatedAt
	return u.repo.Update(ctx, v)
}

// MarkSold closes the pipeline for a vehicle: price in, status to sold,
// sale date recorded. Only a vehicle in stock can be sold.
func (u *VehicleUseCase) MarkSold(ctx context.Context, id string, sellingPrice float64, soldDate time.Time) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}
	if sellingPrice <= 0 {
		return entities.Vehicle{}, ErrInvalidSellingPrice
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	if !entities.CanTransition(v.Status, entities.VehicleStatusSold) {
		return entities.Vehicle{}, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, v.Status, entities.VehicleStatusSold)
	}

	if soldDate.IsZero() {
		soldDate = time.Now().UTC()
	}
	v.Status = entities.VehicleStatusSold
	v.SellingPrice = sellingPrice
	v.SoldDate = &soldDate

	return u.repo.Update(ctx, v)
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidVehicleID
	}
	return u.repo.Delete(ctx, id)
}

func validateVehicle(v entities.Vehicle) error {
	switch {
	case v.VIN == "":
		return fmt.Errorf("%w: vin is required", ErrInvalidVehicle)
	case v.Condition == entities.ConditionDamaged && strings.TrimSpace(v.DamageNote) == "":
		return fmt.Errorf("%w: damaged condition requires a damage note", ErrInvalidVehicle)
	case v.PurchasePrice < 0, v.DeliveryCost < 0, v.CustomsCost < 0, v.RepairCost < 0, v.OtherCost < 0:
		return fmt.Errorf("%w: cost fields must be >= 0", ErrInvalidVehicle)
	case v.SellingPrice < 0:
		return fmt.Errorf("%w: selling price must be >= 0", ErrInvalidVehicle)
	}
	return nil
}
