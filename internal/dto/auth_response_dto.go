package dto

import "time"

// TokenPair is an issued access/refresh token pair. The raw refresh token is
// only ever sent to the client; storage keeps its hash.
type TokenPair struct {
	AccessToken           string    `json:"-"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken          string    `json:"-"`
	RefreshTokenExpiresAt time.Time `json:"-"`
}

// LoginResponse is returned by login, register and refresh. Tokens travel in
// HttpOnly cookies, not in the body.
type LoginResponse struct {
	User                 UserResponse `json:"user"`
	AccessTokenExpiresAt time.Time    `json:"accessTokenExpiresAt"`
}
