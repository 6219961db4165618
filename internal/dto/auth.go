package dto

import "time"

// LoginRequest is the payload for username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token. The refresh token travels in
// an HTTP-only cookie, not in the body.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// GoogleSignInRequest carries the ID token obtained by the front end.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
