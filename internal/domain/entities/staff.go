package entities

import "time"

type StaffRole string

const (
	RoleAdmin StaffRole = "admin"
	RoleStaff StaffRole = "staff"
)

type StaffStatus string

const (
	StaffActive   StaffStatus = "active"
	StaffInactive StaffStatus = "inactive"
)

// Staff is an employee record and, at the same time, the login allow-list:
// anyone present and active here may sign in with their passport number.
//
// Storage model (DynamoDB):
//   - PK: id
//   - PassportNumber is kept unique by the use case, not by the table.
type Staff struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	PassportNumber string      `json:"passport_number"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email"`
	City           string      `json:"city"`
	Role           StaffRole   `json:"role"`
	Status         StaffStatus `json:"status"`
	PasswordHash   string      `json:"-"`
	RegisteredDate time.Time   `json:"registered_date"`
}
