package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autokorea/internal/domain/entities"
	"autokorea/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrStaffNotFound     = errors.New("staff member not found")
	ErrInvalidStaffID    = errors.New("invalid staff id")
	ErrInvalidStaff      = errors.New("invalid staff member")
	ErrDuplicatePassport = errors.New("passport number already registered")
	ErrWeakStaffPassword = errors.New("password must be at least 8 characters long")
)

// IStaffUseCase manages the employee roster, which doubles as the login
// allow-list.
type IStaffUseCase interface {
	Create(ctx context.Context, s entities.Staff, password string) (entities.Staff, error)
	GetByID(ctx context.Context, id string) (entities.Staff, error)
	List(ctx context.Context) ([]entities.Staff, error)
	Update(ctx context.Context, s entities.Staff) (entities.Staff, error)
	Delete(ctx context.Context, id string) error
}

type StaffUseCase struct {
	repo interfaces.IStaffRepository
}

var _ IStaffUseCase = (*StaffUseCase)(nil)

func NewStaffUseCase(repo interfaces.IStaffRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

func (u *StaffUseCase) Create(ctx context.Context, s entities.Staff, password string) (entities.Staff, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.PassportNumber = strings.TrimSpace(s.PassportNumber)
	if s.Name == "" || s.PassportNumber == "" {
		return entities.Staff{}, ErrInvalidStaff
	}
	if len(password) < 8 {
		return entities.Staff{}, ErrWeakStaffPassword
	}

	existing, err := u.repo.GetByPassport(ctx, s.PassportNumber)
	if err != nil {
		return entities.Staff{}, err
	}
	if existing.ID != "" {
		return entities.Staff{}, ErrDuplicatePassport
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.Staff{}, err
	}

	s.ID = uuid.NewString()
	s.PasswordHash = string(hash)
	if s.Role == "" {
		s.Role = entities.RoleStaff
	}
	if s.Status == "" {
		s.Status = entities.StaffActive
	}
	s.RegisteredDate = time.Now().UTC()

	return u.repo.Create(ctx, s)
}

func (u *StaffUseCase) GetByID(ctx context.Context, id string) (entities.Staff, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Staff{}, ErrInvalidStaffID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Staff{}, err
	}
	if s.ID == "" {
		return entities.Staff{}, ErrStaffNotFound
	}
	return s, nil
}

func (u *StaffUseCase) List(ctx context.Context) ([]entities.Staff, error) {
	return u.repo.List(ctx)
}

// Update overwrites profile fields. The password hash always carries over
// from the stored record; password changes go through a dedicated flow, not
// the profile editor.
func (u *StaffUseCase) Update(ctx context.Context, s entities.Staff) (entities.Staff, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.Staff{}, ErrInvalidStaffID
	}
	s.Name = strings.TrimSpace(s.Name)
	s.PassportNumber = strings.TrimSpace(s.PassportNumber)
	if s.Name == "" || s.PassportNumber == "" {
		return entities.Staff{}, ErrInvalidStaff
	}

	current, err := u.repo.GetByID(ctx, s.ID)
	if err != nil {
		return entities.Staff{}, err
	}
	if current.ID == "" {
		return entities.Staff{}, ErrStaffNotFound
	}

	if s.PassportNumber != current.PassportNumber {
		other, err := u.repo.GetByPassport(ctx, s.PassportNumber)
		if err != nil {
			return entities.Staff{}, err
		}
		if other.ID != "" && other.ID != s.ID {
			return entities.Staff{}, ErrDuplicatePassport
		}
	}

	s.PasswordHash = current.PasswordHash
	s.RegisteredDate = current.RegisteredDate
	return u.repo.Update(ctx, s)
}

func (u *StaffUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidStaffID
	}
	return u.repo.Delete(ctx, id)
}
