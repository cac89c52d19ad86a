package services

import (
	"context"
	"errors"
	"time"

	"github.com/tercas-fc/league-system/models"
	"github.com/tercas-fc/league-system/repositories"
)

// Ручные моки репозиториев: каждый метод подменяется полем-функцией.

type mockPlayerRepository struct {
	CreateFunc          func(ctx context.Context, player *models.Player) error
	GetByIDFunc         func(ctx context.Context, id int) (*models.Player, error)
	GetByUsernameFunc   func(ctx context.Context, username string) (*models.Player, error)
	ListActiveFunc      func(ctx context.Context) ([]models.Player, error)
	ListAllFunc         func(ctx context.Context) ([]models.Player, error)
	ListActiveFixedFunc func(ctx context.Context) ([]models.Player, error)
	ListFixedFunc       func(ctx context.Context) ([]models.Player, error)
	UpdateIsFixedFunc   func(ctx context.Context, id int, isFixed bool) error
	UpdateBalanceFunc   func(ctx context.Context, id int, balance float64) error
	SetPreviousRankFunc func(ctx context.Context, id int, rank int) error
}

func (m *mockPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, player)
	}
	return errors.New("not implemented")
}

func (m *mockPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPlayerRepository) GetByUsername(ctx context.Context, username string) (*models.Player, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPlayerRepository) ListActive(ctx context.Context) ([]models.Player, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPlayerRepository) ListAll(ctx context.Context) ([]models.Player, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPlayerRepository) ListActiveFixed(ctx context.Context) ([]models.Player, error) {
	if m.ListActiveFixedFunc != nil {
		return m.ListActiveFixedFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPlayerRepository) ListFixed(ctx context.Context) ([]models.Player, error) {
	if m.ListFixedFunc != nil {
		return m.ListFixedFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockPlayerRepository) UpdateIsFixed(ctx context.Context, id int, isFixed bool) error {
	if m.UpdateIsFixedFunc != nil {
		return m.UpdateIsFixedFunc(ctx, id, isFixed)
	}
	return errors.New("not implemented")
}

func (m *mockPlayerRepository) UpdateBalance(ctx context.Context, id int, balance float64) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, id, balance)
	}
	return errors.New("not implemented")
}

func (m *mockPlayerRepository) SetPreviousRank(ctx context.Context, id int, rank int) error {
	if m.SetPreviousRankFunc != nil {
		return m.SetPreviousRankFunc(ctx, id, rank)
	}
	return errors.New("not implemented")
}

type mockMatchRepository struct {
	CreateFunc        func(ctx context.Context, match *models.Match) error
	GetByIDFunc       func(ctx context.Context, id int) (*models.Match, error)
	GetByDateFunc     func(ctx context.Context, date time.Time) (*models.Match, error)
	NextScheduledFunc func(ctx context.Context, from time.Time) (*models.Match, error)
	ListByDateAscFunc func(ctx context.Context) ([]models.Match, error)
	DeleteAllFunc     func(ctx context.Context) error
}

func (m *mockMatchRepository) Create(ctx context.Context, match *models.Match) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, match)
	}
	return errors.New("not implemented")
}

func (m *mockMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMatchRepository) GetByDate(ctx context.Context, date time.Time) (*models.Match, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, date)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMatchRepository) NextScheduled(ctx context.Context, from time.Time) (*models.Match, error) {
	if m.NextScheduledFunc != nil {
		return m.NextScheduledFunc(ctx, from)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMatchRepository) ListByDateAsc(ctx context.Context) ([]models.Match, error) {
	if m.ListByDateAscFunc != nil {
		return m.ListByDateAscFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMatchRepository) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return errors.New("not implemented")
}

type mockMatchPlayerRepository struct {
	CreateFunc      func(ctx context.Context, link *models.MatchPlayer) error
	ListByMatchFunc func(ctx context.Context, matchID int) ([]models.MatchPlayer, error)
	ListAllFunc     func(ctx context.Context) ([]models.MatchPlayer, error)
	DeleteAllFunc   func(ctx context.Context) error
}

func (m *mockMatchPlayerRepository) Create(ctx context.Context, link *models.MatchPlayer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, link)
	}
	return errors.New("not implemented")
}

func (m *mockMatchPlayerRepository) ListByMatch(ctx context.Context, matchID int) ([]models.MatchPlayer, error) {
	if m.ListByMatchFunc != nil {
		return m.ListByMatchFunc(ctx, matchID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMatchPlayerRepository) ListAll(ctx context.Context) ([]models.MatchPlayer, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMatchPlayerRepository) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return errors.New("not implemented")
}

type mockAttendanceRepository struct {
	UpsertFunc     func(ctx context.Context, attendance *models.Attendance) error
	CountGoingFunc func(ctx context.Context, matchID int) (int, error)
}

func (m *mockAttendanceRepository) Upsert(ctx context.Context, attendance *models.Attendance) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, attendance)
	}
	return errors.New("not implemented")
}

func (m *mockAttendanceRepository) CountGoing(ctx context.Context, matchID int) (int, error) {
	if m.CountGoingFunc != nil {
		return m.CountGoingFunc(ctx, matchID)
	}
	return 0, errors.New("not implemented")
}

type mockChampionRepository struct {
	CreateFunc           func(ctx context.Context, champion *models.Champion) error
	GetByNameFunc        func(ctx context.Context, name string) (*models.Champion, error)
	UpdateTitlesFunc     func(ctx context.Context, id int, titles int) error
	DeleteFunc           func(ctx context.Context, id int) error
	ListByTitlesDescFunc func(ctx context.Context) ([]models.Champion, error)
}

func (m *mockChampionRepository) Create(ctx context.Context, champion *models.Champion) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, champion)
	}
	return errors.New("not implemented")
}

func (m *mockChampionRepository) GetByName(ctx context.Context, name string) (*models.Champion, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, errors.New("not implemented")
}

func (m *mockChampionRepository) UpdateTitles(ctx context.Context, id int, titles int) error {
	if m.UpdateTitlesFunc != nil {
		return m.UpdateTitlesFunc(ctx, id, titles)
	}
	return errors.New("not implemented")
}

func (m *mockChampionRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockChampionRepository) ListByTitlesDesc(ctx context.Context) ([]models.Champion, error) {
	if m.ListByTitlesDescFunc != nil {
		return m.ListByTitlesDescFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

type mockArchiveRepository struct {
	CreateFunc         func(ctx context.Context, archive *models.SeasonArchive) error
	ListByDateDescFunc func(ctx context.Context) ([]models.SeasonArchive, error)
	DeleteFunc         func(ctx context.Context, id int) error
}

func (m *mockArchiveRepository) Create(ctx context.Context, archive *models.SeasonArchive) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, archive)
	}
	return errors.New("not implemented")
}

func (m *mockArchiveRepository) ListByDateDesc(ctx context.Context) ([]models.SeasonArchive, error) {
	if m.ListByDateDescFunc != nil {
		return m.ListByDateDescFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockArchiveRepository) Delete(ctx context.Context, id int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

// Проверка соответствия интерфейсам.
var (
	_ repositories.PlayerRepository      = (*mockPlayerRepository)(nil)
	_ repositories.MatchRepository       = (*mockMatchRepository)(nil)
	_ repositories.MatchPlayerRepository = (*mockMatchPlayerRepository)(nil)
	_ repositories.AttendanceRepository  = (*mockAttendanceRepository)(nil)
	_ repositories.ChampionRepository    = (*mockChampionRepository)(nil)
	_ repositories.ArchiveRepository     = (*mockArchiveRepository)(nil)
)
