package dto

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
}

// AccessTokenResponse carries the short-lived token. The refresh token is
// never included here; it travels only in the session cookie.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// MessageResponse is a generic confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// MeResponse echoes the identity asserted by a verified access token.
type MeResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}
