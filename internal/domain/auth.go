package domain

// TokenPair is the result of a successful login: a short-lived access token
// returned in the response body and a long-lived refresh token carried in
// the session cookie. Each kind is signed with its own secret so possession
// of one secret cannot forge the other kind.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
