package service

import (
	"github.com/sridharvel/annapoorna-pos/pkg/apperror"
	"github.com/sridharvel/annapoorna-pos/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles the single-operator PIN login. The PIN comes from
// configuration; it is hashed once at startup so the clear text is not kept
// around.
type AuthService struct {
	pinHash    []byte
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(pin string, jwtManager *utils.JWTManager) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		pinHash:    hash,
		jwtManager: jwtManager,
	}, nil
}

// Login checks the PIN and returns a signed operator token.
func (s *AuthService) Login(pin string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.pinHash, []byte(pin)); err != nil {
		return "", apperror.ErrInvalidPIN
	}

	token, err := s.jwtManager.GenerateToken()
	if err != nil {
		return "", apperror.NewStorageError(err)
	}
	return token, nil
}
