package request

import "autokorea/internal/domain/entities"

// CreateStaffRequest registers an employee in the allow-list. The plain
// password is hashed by the use case and never stored.
type CreateStaffRequest struct {
	Name           string `json:"name" binding:"required"`
	PassportNumber string `json:"passport_number" binding:"required"`
	Password       string `json:"password" binding:"required"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	City           string `json:"city"`
	Role           string `json:"role"`
}

func (r CreateStaffRequest) ToEntity() entities.Staff {
	return entities.Staff{
		Name:           r.Name,
		PassportNumber: r.PassportNumber,
		Phone:          r.Phone,
		Email:          r.Email,
		City:           r.City,
		Role:           entities.StaffRole(r.Role),
	}
}

// UpdateStaffRequest edits profile fields; passwords change elsewhere.
type UpdateStaffRequest struct {
	Name           string `json:"name" binding:"required"`
	PassportNumber string `json:"passport_number" binding:"required"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	City           string `json:"city"`
	Role           string `json:"role"`
	Status         string `json:"status"`
}

func (r UpdateStaffRequest) ToEntity(id string) entities.Staff {
	return entities.Staff{
		ID:             id,
		Name:           r.Name,
		PassportNumber: r.PassportNumber,
		Phone:          r.Phone,
		Email:          r.Email,
		City:           r.City,
		Role:           entities.StaffRole(r.Role),
		Status:         entities.StaffStatus(r.Status),
	}
}
