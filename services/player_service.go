package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tercas-fc/league-system/models"
	"github.com/tercas-fc/league-system/repositories"
)

type CreatePlayerInput struct {
	Name    string `json:"name"`
	IsFixed bool   `json:"is_fixed"`
}

type PlayerService interface {
	Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	UpdateStatus(ctx context.Context, playerID int, isFixed bool) error
	ListActive(ctx context.Context) ([]models.Player, error)
	ListAll(ctx context.Context) ([]models.Player, error)
	RegisterPayment(ctx context.Context, playerID int, amount float64) error
	ChargeMonthlyFees(ctx context.Context) (int, error)
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	monthlyFee float64
}

func NewPlayerService(playerRepo repositories.PlayerRepository, monthlyFee float64) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		monthlyFee: monthlyFee,
	}
}

func (s *playerService) Create(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}

	player := &models.Player{
		Name:         name,
		Role:         models.RolePlayer,
		IsActive:     true,
		Balance:      0,
		IsFixed:      input.IsFixed,
		PreviousRank: 0,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNameConflict) {
			return nil, ErrPlayerNameConflict
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (s *playerService) UpdateStatus(ctx context.Context, playerID int, isFixed bool) error {
	err := s.playerRepo.UpdateIsFixed(ctx, playerID, isFixed)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to update player status: %w", err)
	}
	return nil
}

func (s *playerService) ListActive(ctx context.Context) ([]models.Player, error) {
	return s.playerRepo.ListActive(ctx)
}

func (s *playerService) ListAll(ctx context.Context) ([]models.Player, error) {
	return s.playerRepo.ListAll(ctx)
}

func (s *playerService) RegisterPayment(ctx context.Context, playerID int, amount float64) error {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to load player: %w", err)
	}

	err = s.playerRepo.UpdateBalance(ctx, player.ID, player.Balance+amount)
	if err != nil {
		return fmt.Errorf("failed to register payment: %w", err)
	}
	return nil
}

// ChargeMonthlyFees списывает месячную квоту со всех фиксированных игроков.
// Намеренно не идемпотентна: повторный вызов спишет квоту ещё раз,
// планирование лежит на вызывающей стороне.
func (s *playerService) ChargeMonthlyFees(ctx context.Context) (int, error) {
	fixedPlayers, err := s.playerRepo.ListFixed(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list fixed players: %w", err)
	}

	count := 0
	for _, player := range fixedPlayers {
		err = s.playerRepo.UpdateBalance(ctx, player.ID, player.Balance-s.monthlyFee)
		if err != nil {
			return count, fmt.Errorf("failed to charge player %d: %w", player.ID, err)
		}
		count++
	}

	return count, nil
}
