package model

import "github.com/golang-jwt/jwt/v5"

// LoginRequest carries clinician credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token       string `json:"token"`
	ClinicianID string `json:"clinician_id"`
}

// ClinicianClaims are the JWT claims for a logged-in clinician.
type ClinicianClaims struct {
	ClinicianID string `json:"clinician_id"`
	jwt.RegisteredClaims
}
