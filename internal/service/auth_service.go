package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"intakeflow/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles clinician authentication. Patient-facing intake
// endpoints are public; the token only guards the summary archive.
type AuthService struct {
	clinicianUsername string
	clinicianPassword string
	jwtSecret         []byte
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	username := os.Getenv("CLINICIAN_USERNAME")
	if username == "" {
		username = "clinician"
	}
	password := os.Getenv("CLINICIAN_PASSWORD")
	if password == "" {
		password = "changeme"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		clinicianUsername: username,
		clinicianPassword: password,
		jwtSecret:         []byte(secret),
	}
}

// Login validates credentials and returns a signed token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.clinicianUsername || password != s.clinicianPassword {
		return nil, ErrInvalidCredentials
	}

	clinicianID := "clin_" + uuid.New().String()[:8]

	claims := &model.ClinicianClaims{
		ClinicianID: clinicianID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:       tokenString,
		ClinicianID: clinicianID,
	}, nil
}

// ValidateToken validates a clinician JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.ClinicianClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ClinicianClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.ClinicianClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
