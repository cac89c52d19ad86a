package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tercas-fc/league-system/models"
)

func TestTableServiceGetTable(t *testing.T) {
	result := models.ResultTeamA
	playerRepo := &mockPlayerRepository{
		ListActiveFixedFunc: func(ctx context.Context) ([]models.Player, error) {
			return []models.Player{
				{ID: 1, Name: "Rui", IsActive: true, IsFixed: true},
				{ID: 2, Name: "Nuno", IsActive: true, IsFixed: true},
			}, nil
		},
	}
	matchRepo := &mockMatchRepository{
		ListByDateAscFunc: func(ctx context.Context) ([]models.Match, error) {
			return []models.Match{
				{ID: 1, Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Result: &result, Status: models.MatchStatusCompleted},
			}, nil
		},
	}
	matchPlayerRepo := &mockMatchPlayerRepository{
		ListAllFunc: func(ctx context.Context) ([]models.MatchPlayer, error) {
			return []models.MatchPlayer{
				{MatchID: 1, PlayerID: 1, Team: models.SideA},
				{MatchID: 1, PlayerID: 2, Team: models.SideB},
			}, nil
		},
	}
	svc := NewTableService(playerRepo, matchRepo, matchPlayerRepo)

	rows, err := svc.GetTable(context.Background())
	if err != nil {
		t.Fatalf("GetTable returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Rui" || rows[0].Points != 3 {
		t.Errorf("expected winner Rui with 3 points on top, got %+v", rows[0])
	}
	if rows[1].Name != "Nuno" || rows[1].Points != 1 {
		t.Errorf("expected Nuno with 1 point, got %+v", rows[1])
	}
}

func TestTableServiceGetTablePropagatesErrors(t *testing.T) {
	loadErr := errors.New("connection refused")
	playerRepo := &mockPlayerRepository{
		ListActiveFixedFunc: func(ctx context.Context) ([]models.Player, error) {
			return nil, loadErr
		},
	}
	matchRepo := &mockMatchRepository{
		ListByDateAscFunc: func(ctx context.Context) ([]models.Match, error) {
			return nil, nil
		},
	}
	matchPlayerRepo := &mockMatchPlayerRepository{
		ListAllFunc: func(ctx context.Context) ([]models.MatchPlayer, error) {
			return nil, nil
		},
	}
	svc := NewTableService(playerRepo, matchRepo, matchPlayerRepo)

	_, err := svc.GetTable(context.Background())
	if !errors.Is(err, loadErr) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
}
