package dto

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
