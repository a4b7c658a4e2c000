package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"velya/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthUsecase issues tokens for operators reading the interaction
// archive.
type AuthUsecase struct {
	operators *repository.OperatorRepository
	jwtSecret []byte
}

func NewAuthUsecase(operators *repository.OperatorRepository, secret string) *AuthUsecase {
	return &AuthUsecase{
		operators: operators,
		jwtSecret: []byte(secret),
	}
}

func (uc *AuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	op, err := uc.operators.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if op == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"operator_id": op.ID,
		"role":        op.Role,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// EnsureAdmin seeds a root operator on first startup.
func (uc *AuthUsecase) EnsureAdmin(ctx context.Context, username, password string) error {
	op, err := uc.operators.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if op != nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.operators.Create(ctx, username, string(hashed), "admin")
}
