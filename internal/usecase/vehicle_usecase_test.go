package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autokorea/internal/domain/entities"
	mock_interfaces "autokorea/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validVehicle() entities.Vehicle {
	return entities.Vehicle{
		Brand:         "Hyundai",
		Model:         "Sonata",
		Year:          2021,
		VIN:           "KMHL14JA5MA123456",
		Condition:     entities.ConditionGood,
		PurchasePrice: 14_000,
	}
}

func TestVehicleUseCase_Create(t *testing.T) {
	t.Run("missing vin", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		v := validVehicle()
		v.VIN = "   "
		_, err := uc.Create(context.Background(), v)
		if !errors.Is(err, ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("damaged without note", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		v := validVehicle()
		v.Condition = entities.ConditionDamaged
		_, err := uc.Create(context.Background(), v)
		if !errors.Is(err, ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("negative cost", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		v := validVehicle()
		v.RepairCost = -1
		_, err := uc.Create(context.Background(), v)
		if !errors.Is(err, ErrInvalidVehicle) {
			t.Fatalf("expected ErrInvalidVehicle, got %v", err)
		}
	})

	t.Run("assigns id, timestamp and default status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.ID == "" {
					t.Fatal("expected generated id")
				}
				if v.CreatedAt.IsZero() {
					t.Fatal("expected created timestamp")
				}
				if v.Status != entities.VehicleStatusInKorea {
					t.Fatalf("expected default status in_korea, got %q", v.Status)
				}
				return v, nil
			})

		created, err := uc.Create(context.Background(), validVehicle())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.VIN != "KMHL14JA5MA123456" {
			t.Fatalf("unexpected vin %q", created.VIN)
		}
	})

	t.Run("legacy status becomes unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.Status != entities.VehicleStatusUnknown {
					t.Fatalf("expected unknown status, got %q", v.Status)
				}
				return v, nil
			})

		v := validVehicle()
		v.Status = "transit"
		if _, err := uc.Create(context.Background(), v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVehicleUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(entities.Vehicle{}, nil)

		_, err := uc.GetByID(context.Background(), "v-1")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})
}

func TestVehicleUseCase_Update(t *testing.T) {
	stored := validVehicle()
	stored.ID = "v-1"
	stored.Status = entities.VehicleStatusShipping
	stored.CreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("forward transition allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.Status != entities.VehicleStatusCustoms {
					t.Fatalf("expected customs status, got %q", v.Status)
				}
				if !v.CreatedAt.Equal(stored.CreatedAt) {
					t.Fatal("expected created timestamp to be preserved")
				}
				return v, nil
			})

		update := stored
		update.Status = entities.VehicleStatusCustoms
		if _, err := uc.Update(context.Background(), update, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stage skip rejected without override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(stored, nil)

		update := stored
		update.Status = entities.VehicleStatusSold
		_, err := uc.Update(context.Background(), update, false)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("admin override allows any known move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) { return v, nil })

		update := stored
		update.Status = entities.VehicleStatusInKorea
		if _, err := uc.Update(context.Background(), update, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("override still cannot leave unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		legacy := stored
		legacy.Status = entities.VehicleStatusUnknown
		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(legacy, nil)

		update := stored
		update.Status = entities.VehicleStatusInStock
		_, err := uc.Update(context.Background(), update, true)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}

func TestVehicleUseCase_MarkSold(t *testing.T) {
	t.Run("non positive price", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		_, err := uc.MarkSold(context.Background(), "v-1", 0, time.Time{})
		if !errors.Is(err, ErrInvalidSellingPrice) {
			t.Fatalf("expected ErrInvalidSellingPrice, got %v", err)
		}
	})

	t.Run("only in stock can be sold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		v := validVehicle()
		v.ID = "v-1"
		v.Status = entities.VehicleStatusShipping
		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil)

		_, err := uc.MarkSold(context.Background(), "v-1", 16_000, time.Time{})
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("sale records price, status and date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		v := validVehicle()
		v.ID = "v-1"
		v.Status = entities.VehicleStatusInStock
		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil)

		soldDate := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated entities.Vehicle) (entities.Vehicle, error) {
				if updated.Status != entities.VehicleStatusSold {
					t.Fatalf("expected sold status, got %q", updated.Status)
				}
				if updated.SellingPrice != 16_000 {
					t.Fatalf("expected selling price 16000, got %v", updated.SellingPrice)
				}
				if updated.SoldDate == nil || !updated.SoldDate.Equal(soldDate) {
					t.Fatalf("expected sold date %v, got %v", soldDate, updated.SoldDate)
				}
				return updated, nil
			})

		if _, err := uc.MarkSold(context.Background(), "v-1", 16_000, soldDate); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero sold date defaults to now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		v := validVehicle()
		v.ID = "v-1"
		v.Status = entities.VehicleStatusInStock
		repo.EXPECT().GetByID(gomock.Any(), "v-1").Return(v, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated entities.Vehicle) (entities.Vehicle, error) {
				if updated.SoldDate == nil || updated.SoldDate.IsZero() {
					t.Fatal("expected a defaulted sold date")
				}
				return updated, nil
			})

		if _, err := uc.MarkSold(context.Background(), "v-1", 16_000, time.Time{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestVehicleUseCase_Delete(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		uc := NewVehicleUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "v-1").Return(nil)
		if err := uc.Delete(context.Background(), "v-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
