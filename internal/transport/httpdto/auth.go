package httpdto

// SignupRequest is used for POST /signup
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupResponse is returned after successful signup
type SignupResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

// LoginRequest is used for POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        AuthUserDTO `json:"user"`
}

// AuthUserDTO represents the user in auth responses
type AuthUserDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    string `json:"id"`
}

// MeResponse echoes the verified token claims
type MeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
