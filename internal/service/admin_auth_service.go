package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"carrental/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSecretNotSet       = errors.New("JWT_SECRET not set")
)

const tokenTTL = time.Hour

type AdminClaims struct {
	AdminID int
	Email   string
}

type AdminAuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	// EnsureAdmin creates the account unless an admin with that email exists.
	EnsureAdmin(ctx context.Context, email, password string) error
	ValidateToken(token string) (*AdminClaims, error)
}

type adminAuthService struct {
	repo   repository.AdminAuthRepository
	secret []byte
	now    func() time.Time
}

func NewAdminAuthService(repo repository.AdminAuthRepository, secret string) AdminAuthService {
	return &adminAuthService{repo: repo, secret: []byte(secret), now: time.Now}
}

func (s *adminAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrSecretNotSet
	}
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"exp":      s.now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *adminAuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password cannot be empty")
	}
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	if err := s.repo.CreateNewUser(ctx, email, password); err != nil {
		return err
	}
	log.Printf("Created admin account %s", email)
	return nil
}

func (s *adminAuthService) ValidateToken(tokenString string) (*AdminClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrSecretNotSet
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	id, _ := claims["admin_id"].(float64)
	if email == "" {
		return nil, ErrInvalidToken
	}
	return &AdminClaims{AdminID: int(id), Email: email}, nil
}
