package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tercas-fc/league-system/models"
	"github.com/tercas-fc/league-system/repositories"
)

type ChampionService interface {
	List(ctx context.Context) ([]models.Champion, error)
	RemoveTitle(ctx context.Context, name string) error
}

type championService struct {
	championRepo repositories.ChampionRepository
}

func NewChampionService(championRepo repositories.ChampionRepository) ChampionService {
	return &championService{championRepo: championRepo}
}

func (s *championService) List(ctx context.Context) ([]models.Champion, error) {
	return s.championRepo.ListByTitlesDesc(ctx)
}

// RemoveTitle снимает один титул; последний титул удаляет запись целиком.
func (s *championService) RemoveTitle(ctx context.Context, name string) error {
	champion, err := s.championRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionNotFound) {
			return ErrChampionNotFound
		}
		return fmt.Errorf("failed to load champion: %w", err)
	}

	if champion.Titles > 1 {
		err = s.championRepo.UpdateTitles(ctx, champion.ID, champion.Titles-1)
	} else {
		err = s.championRepo.Delete(ctx, champion.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to remove title: %w", err)
	}
	return nil
}
