package request

// LoginRequest: login is either the super-admin username or a staff passport
// number.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
