package interfaces

import "autokorea/internal/domain/entities"

// Claims is the identity carried by a session token.
type Claims struct {
	Subject string
	Name    string
	Role    entities.StaffRole
}

// ITokenService issues and validates session tokens for the API.
type ITokenService interface {
	Generate(claims Claims) (string, error)
	Validate(token string) (Claims, error)
}
