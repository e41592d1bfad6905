package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for admin authentication
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// CandidateClaims are JWT claims for candidate tokens
type CandidateClaims struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// CandidateTokenRequest is the request body for candidate token issuance
type CandidateTokenRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
}

// CandidateTokenResponse is returned with a fresh candidate token
type CandidateTokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
