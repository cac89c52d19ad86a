package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tercas-fc/league-system/models"
	"github.com/tercas-fc/league-system/repositories"
)

// CredentialVerifier проверяет учётные данные и возвращает игрока с его ролью.
// Абстракция вместо сравнения паролей открытым текстом: реализацию можно
// подменить, набор ролей и матрица прав остаются прежними.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (*models.Player, error)
}

type bcryptVerifier struct {
	playerRepo repositories.PlayerRepository
}

func NewBcryptCredentialVerifier(playerRepo repositories.PlayerRepository) CredentialVerifier {
	return &bcryptVerifier{playerRepo: playerRepo}
}

func (v *bcryptVerifier) Verify(ctx context.Context, username, password string) (*models.Player, error) {
	player, err := v.playerRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find player by username: %w", err)
	}

	if player.PasswordHash == nil {
		return nil, ErrAuthInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(*player.PasswordHash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	player.PasswordHash = nil

	return player, nil
}

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (*models.Player, error)
}

type authService struct {
	verifier CredentialVerifier
}

func NewAuthService(verifier CredentialVerifier) AuthService {
	return &authService{verifier: verifier}
}

func (s *authService) Login(ctx context.Context, credentials models.Credentials) (*models.Player, error) {
	return s.verifier.Verify(ctx, credentials.Username, credentials.Password)
}
