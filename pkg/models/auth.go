package models

// LoginRequest represents an admin login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthData carries the session token and admin identity after login
type AuthData struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthResponse wraps AuthData the way the admin SPA expects it
type AuthResponse struct {
	Success bool     `json:"success"`
	Data    AuthData `json:"data"`
}

// ProfileData is the admin identity returned by the profile endpoint
type ProfileData struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// SettingRequest is the body for creating or updating a setting
type SettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}
