package dto

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=3"`
}

// SSOExchangeRequest carries the external portal token handed over via
// the login URL's token parameter.
type SSOExchangeRequest struct {
	Token string `json:"token" validate:"required"`
}

// TokenResponse is the backend's credential envelope for all three
// auth flows.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SessionResponse tells the presentation layer where the auth gate
// stands.
type SessionResponse struct {
	State           string `json:"state"`
	IsAuthenticated bool   `json:"is_authenticated"`
}
