package response

import (
	"time"

	"autokorea/internal/domain/entities"
)

// StaffResponse never carries the password hash.
type StaffResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	PassportNumber string    `json:"passport_number"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	City           string    `json:"city"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	RegisteredDate time.Time `json:"registered_date"`
}

func FromStaff(s entities.Staff) StaffResponse {
	return StaffResponse{
		ID:             s.ID,
		Name:           s.Name,
		PassportNumber: s.PassportNumber,
		Phone:          s.Phone,
		Email:          s.Email,
		City:           s.City,
		Role:           string(s.Role),
		Status:         string(s.Status),
		RegisteredDate: s.RegisteredDate,
	}
}

func FromStaffList(staff []entities.Staff) []StaffResponse {
	out := make([]StaffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, FromStaff(s))
	}
	return out
}
