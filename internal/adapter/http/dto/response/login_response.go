package response

import "autokorea/internal/usecase"

type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func FromSession(s usecase.Session) LoginResponse {
	return LoginResponse{Token: s.Token, Name: s.Name, Role: string(s.Role)}
}
