package interfaces

import (
	"context"

	"autokorea/internal/domain/entities"
)

// IStaffRepository abstracts DynamoDB persistence for Staff.
//
// GetByPassport backs both login (allow-list lookup) and the uniqueness check
// on create; it returns a zero-ID record when no match exists.
type IStaffRepository interface {
	Create(ctx context.Context, s entities.Staff) (entities.Staff, error)
	GetByID(ctx context.Context, id string) (entities.Staff, error)
	GetByPassport(ctx context.Context, passportNumber string) (entities.Staff, error)
	List(ctx context.Context) ([]entities.Staff, error)
	Update(ctx context.Context, s entities.Staff) (entities.Staff, error)
	Delete(ctx context.Context, id string) error
}
