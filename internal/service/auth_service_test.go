package service

import (
	"errors"
	"strings"
	"testing"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	t.Setenv("CLINICIAN_USERNAME", "drwho")
	t.Setenv("CLINICIAN_PASSWORD", "tardis")
	t.Setenv("JWT_SECRET", "test-secret")
	return NewAuthService()
}

func TestLogin_Success(t *testing.T) {
	svc := newTestAuth(t)

	resp, err := svc.Login("drwho", "tardis")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a signed token")
	}
	if !strings.HasPrefix(resp.ClinicianID, "clin_") {
		t.Errorf("unexpected clinician id %q", resp.ClinicianID)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := newTestAuth(t)

	for _, creds := range [][2]string{
		{"drwho", "wrong"},
		{"wrong", "tardis"},
		{"", ""},
	} {
		if _, err := svc.Login(creds[0], creds[1]); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q, %q): want ErrInvalidCredentials, got %v", creds[0], creds[1], err)
		}
	}
}

func TestValidateToken_RoundTrip(t *testing.T) {
	svc := newTestAuth(t)

	resp, err := svc.Login("drwho", "tardis")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.ClinicianID != resp.ClinicianID {
		t.Errorf("claims mismatch: %q vs %q", claims.ClinicianID, resp.ClinicianID)
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestAuth(t)
	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("want ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestAuth(t)
	resp, err := issuer.Login("drwho", "tardis")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	t.Setenv("JWT_SECRET", "a-different-secret")
	verifier := NewAuthService()
	if _, err := verifier.ValidateToken(resp.Token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token signed with another secret should fail, got %v", err)
	}
}
