package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lyepez-glitch/VitalCore/internal/core/auth"
	"github.com/lyepez-glitch/VitalCore/internal/domain"
	"github.com/lyepez-glitch/VitalCore/pkg/utils"
)

// AuthService handles signup and login. Passwords are stored only as bcrypt
// hashes; the plaintext never leaves this layer.
type AuthService struct {
	users domain.UserRepository
	jwt   *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwt *auth.JWTer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwt: jwt, log: log}
}

func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.User, error) {
	u := &domain.User{
		Email:        strings.TrimSpace(email),
		PasswordHash: utils.HashPassword(password),
	}
	if password == "" {
		u.PasswordHash = ""
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user signed up", zap.Uint("id", u.ID))
	return u, nil
}

// Login verifies the credentials and issues a signed session token. Unknown
// email and wrong password collapse into the same error on purpose.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	tok, err := s.jwt.Issue(strconv.FormatUint(uint64(u.ID), 10))
	if err != nil || tok == "" {
		s.log.Error("issue token", zap.Error(err))
		return "", errors.New("issue token failed")
	}
	return tok, nil
}
