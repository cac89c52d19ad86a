package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tercas-fc/league-system/models"
	"github.com/tercas-fc/league-system/repositories"
)

type RecordMatchInput struct {
	Date           time.Time
	Result         models.MatchResult
	TeamAPlayers   []int
	TeamBPlayers   []int
	Goalkeepers    []int
	IsDoublePoints bool
}

type MatchService interface {
	RecordMatch(ctx context.Context, input RecordMatchInput) (*models.Match, error)
}

type matchService struct {
	matchRepo       repositories.MatchRepository
	matchPlayerRepo repositories.MatchPlayerRepository
	playerRepo      repositories.PlayerRepository
	matchFee        float64
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	matchPlayerRepo repositories.MatchPlayerRepository,
	playerRepo repositories.PlayerRepository,
	matchFee float64,
) MatchService {
	return &matchService{
		matchRepo:       matchRepo,
		matchPlayerRepo: matchPlayerRepo,
		playerRepo:      playerRepo,
		matchFee:        matchFee,
	}
}

// RecordMatch сохраняет результат матча, участников по сторонам и списывает
// плату за игру. Фиксированные игроки и вратари освобождены от платы.
func (s *matchService) RecordMatch(ctx context.Context, input RecordMatchInput) (*models.Match, error) {
	if !input.Result.Valid() {
		return nil, ErrMatchInvalidResult
	}
	if len(input.TeamAPlayers) == 0 || len(input.TeamBPlayers) == 0 {
		return nil, ErrMatchRosterRequired
	}

	result := input.Result
	match := &models.Match{
		Date:           input.Date,
		Result:         &result,
		IsDoublePoints: input.IsDoublePoints,
		Status:         models.MatchStatusCompleted,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	goalkeepers := make(map[int]bool, len(input.Goalkeepers))
	for _, id := range input.Goalkeepers {
		goalkeepers[id] = true
	}
	teamA := make(map[int]bool, len(input.TeamAPlayers))
	for _, id := range input.TeamAPlayers {
		teamA[id] = true
	}

	allPlayers := append(append([]int{}, input.TeamAPlayers...), input.TeamBPlayers...)
	for _, playerID := range allPlayers {
		side := models.SideB
		if teamA[playerID] {
			side = models.SideA
		}

		link := &models.MatchPlayer{
			MatchID:  match.ID,
			PlayerID: playerID,
			Team:     side,
		}
		if err := s.matchPlayerRepo.Create(ctx, link); err != nil {
			return nil, fmt.Errorf("failed to register participant %d: %w", playerID, err)
		}

		if goalkeepers[playerID] {
			continue
		}

		player, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load participant %d: %w", playerID, err)
		}
		if player.IsFixed {
			continue
		}

		err = s.playerRepo.UpdateBalance(ctx, player.ID, player.Balance-s.matchFee)
		if err != nil {
			return nil, fmt.Errorf("failed to charge participant %d: %w", playerID, err)
		}
	}

	return match, nil
}
