package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tercas-fc/league-system/models"
	"github.com/tercas-fc/league-system/repositories"
	"github.com/tercas-fc/league-system/standings"
)

// TableService пересобирает таблицу с нуля при каждом запросе:
// никакого инкрементального состояния, только полная история матчей.
type TableService interface {
	GetTable(ctx context.Context) ([]models.TableRow, error)
}

type tableService struct {
	playerRepo      repositories.PlayerRepository
	matchRepo       repositories.MatchRepository
	matchPlayerRepo repositories.MatchPlayerRepository
}

func NewTableService(
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	matchPlayerRepo repositories.MatchPlayerRepository,
) TableService {
	return &tableService{
		playerRepo:      playerRepo,
		matchRepo:       matchRepo,
		matchPlayerRepo: matchPlayerRepo,
	}
}

func (s *tableService) GetTable(ctx context.Context) ([]models.TableRow, error) {
	var (
		players []models.Player
		matches []models.Match
		links   []models.MatchPlayer
	)

	// Три независимых чтения, грузим параллельно.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.ListActiveFixed(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByDateAsc(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		links, err = s.matchPlayerRepo.ListAll(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load table inputs: %w", err)
	}

	return standings.Compute(players, matches, links), nil
}
