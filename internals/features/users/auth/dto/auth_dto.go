package dto

type AuthenticationRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type AuthenticationResponse struct {
	Token         string `json:"token"`
	Authenticated bool   `json:"authenticated"`
}

type IntrospectResponse struct {
	Valid bool `json:"valid"`
}
