package service

import (
	"testing"
	"time"

	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
	"github.com/sridharvel/annapoorna-pos/pkg/utils"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	svc, err := NewAuthService("4321", jwtManager)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}
	return svc
}

func TestLoginWithCorrectPIN(t *testing.T) {
	svc := newAuthService(t)

	token, err := svc.Login("4321")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("login returned empty token")
	}

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	if err := jwtManager.ValidateToken(token); err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
}

func TestLoginWithWrongPIN(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login("0000")
	if err == nil {
		t.Fatal("wrong PIN accepted")
	}
	if code := apperror.GetAppError(err).Code; code != 401 {
		t.Fatalf("got code %d, want 401", code)
	}
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	other := utils.NewJWTManager("other-secret", time.Hour)
	token, err := other.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	if err := jwtManager.ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret validated")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", -time.Minute)
	token, err := jwtManager.GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if err := jwtManager.ValidateToken(token); err == nil {
		t.Fatal("expired token validated")
	}
}
