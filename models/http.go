package models

// TokenType is the token_type value returned by the login endpoint.
const TokenType = "bearer"

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ErrorResponse is the generic error body returned for every failed request.
// Detail never carries internal error text.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
