package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/logger"
	"github.com/mannsoni/portfolio/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminReader defines read-only operations for admins.
type AdminReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminDB, error)
}

// TokenGenerator issues session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, adminID uuid.UUID, email string) (string, error)
}

// AuthService handles admin login.
type AuthService struct {
	reader AdminReader
	jwt    TokenGenerator

	dummyOnce sync.Once
	dummyHash []byte
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AdminReader, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
	}
}

// Login authenticates an admin and returns a signed session token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get admin", "err", err)
		return "", err
	}
	if admin == nil {
		// unknown emails pay the same bcrypt cost as wrong passwords
		_ = bcrypt.CompareHashAndPassword(svc.fallbackHash(), []byte(password))
		logger.Log.Warnw("login for unknown admin", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, admin.AdminID, admin.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	logger.Log.Infow("admin logged in", "admin_id", admin.AdminID)
	return token, nil
}

func (svc *AuthService) fallbackHash() []byte {
	svc.dummyOnce.Do(func() {
		svc.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	})
	return svc.dummyHash
}
