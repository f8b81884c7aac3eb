package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT payload for a screening session
type SessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// SessionResponse is returned when a screening session is opened
type SessionResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
