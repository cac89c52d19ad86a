package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/tercas-fc/league-system/models"
	"github.com/tercas-fc/league-system/repositories"
	"github.com/tercas-fc/league-system/storage"
)

type CloseSeasonInput struct {
	SeasonName   string `json:"season_name"`
	ChampionName string `json:"champion_name,omitempty"`
}

type CloseSeasonResult struct {
	ChampionName string
	ArchiveID    int
}

type SeasonService interface {
	CloseSeason(ctx context.Context, input CloseSeasonInput) (*CloseSeasonResult, error)
	History(ctx context.Context) ([]models.SeasonArchive, error)
	DeleteHistory(ctx context.Context, archiveID int) error
	// ManualReset безусловно стирает матчи и участия, не трогая игроков,
	// чемпионов и архив.
	ManualReset(ctx context.Context) error
}

type seasonService struct {
	tableService    TableService
	playerRepo      repositories.PlayerRepository
	matchRepo       repositories.MatchRepository
	matchPlayerRepo repositories.MatchPlayerRepository
	championRepo    repositories.ChampionRepository
	archiveRepo     repositories.ArchiveRepository
	uploader        storage.FileUploader // nil, если выгрузка не настроена
	clock           clockwork.Clock
	logger          *slog.Logger
}

func NewSeasonService(
	tableService TableService,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	matchPlayerRepo repositories.MatchPlayerRepository,
	championRepo repositories.ChampionRepository,
	archiveRepo repositories.ArchiveRepository,
	uploader storage.FileUploader,
	clock clockwork.Clock,
	logger *slog.Logger,
) SeasonService {
	return &seasonService{
		tableService:    tableService,
		playerRepo:      playerRepo,
		matchRepo:       matchRepo,
		matchPlayerRepo: matchPlayerRepo,
		championRepo:    championRepo,
		archiveRepo:     archiveRepo,
		uploader:        uploader,
		clock:           clock,
		logger:          logger,
	}
}

// CloseSeason закрывает сезон: чемпион получает титул, всем игрокам таблицы
// перезаписывается previous_rank, финальная таблица архивируется, после чего
// история матчей стирается. Балансы и титулы переживают закрытие.
func (s *seasonService) CloseSeason(ctx context.Context, input CloseSeasonInput) (*CloseSeasonResult, error) {
	seasonName := strings.TrimSpace(input.SeasonName)
	if seasonName == "" {
		return nil, ErrSeasonNameRequired
	}

	finalStats, err := s.tableService.GetTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute final table: %w", err)
	}
	if len(finalStats) == 0 {
		return nil, ErrSeasonNoData
	}

	// "AUTO" присылает клиент как заглушку: в этом случае титул берёт лидер.
	championName := strings.TrimSpace(input.ChampionName)
	if championName == "" || championName == "AUTO" {
		championName = finalStats[0].Name
	}

	if err := s.upsertChampion(ctx, championName); err != nil {
		return nil, err
	}

	for index, row := range finalStats {
		err = s.playerRepo.SetPreviousRank(ctx, row.ID, index+1)
		if err != nil && !errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed to set previous rank for player %d: %w", row.ID, err)
		}
	}

	snapshot, err := json.Marshal(finalStats)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize final table: %w", err)
	}

	today := s.clock.Now()
	archive := &models.SeasonArchive{
		SeasonName: fmt.Sprintf("%s (%s)", seasonName, today.Format("2006-01-02")),
		DataJSON:   string(snapshot),
		Date:       today,
	}
	if err := s.archiveRepo.Create(ctx, archive); err != nil {
		return nil, fmt.Errorf("failed to write season archive: %w", err)
	}

	s.uploadSnapshot(ctx, archive, snapshot)

	// Порядок важен: сначала участия (FK), потом матчи.
	if err := s.matchPlayerRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear match participations: %w", err)
	}
	if err := s.matchRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear matches: %w", err)
	}

	return &CloseSeasonResult{
		ChampionName: championName,
		ArchiveID:    archive.ID,
	}, nil
}

func (s *seasonService) History(ctx context.Context) ([]models.SeasonArchive, error) {
	return s.archiveRepo.ListByDateDesc(ctx)
}

func (s *seasonService) DeleteHistory(ctx context.Context, archiveID int) error {
	err := s.archiveRepo.Delete(ctx, archiveID)
	if err != nil {
		if errors.Is(err, repositories.ErrArchiveNotFound) {
			return ErrArchiveNotFound
		}
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	return nil
}

func (s *seasonService) ManualReset(ctx context.Context) error {
	if err := s.matchPlayerRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear match participations: %w", err)
	}
	if err := s.matchRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear matches: %w", err)
	}
	return nil
}

func (s *seasonService) upsertChampion(ctx context.Context, name string) error {
	champion, err := s.championRepo.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, repositories.ErrChampionNotFound) {
			return fmt.Errorf("failed to load champion: %w", err)
		}
		champion = &models.Champion{Name: name, Titles: 1}
		if err := s.championRepo.Create(ctx, champion); err != nil {
			return fmt.Errorf("failed to create champion: %w", err)
		}
		return nil
	}

	err = s.championRepo.UpdateTitles(ctx, champion.ID, champion.Titles+1)
	if err != nil {
		return fmt.Errorf("failed to increment champion titles: %w", err)
	}
	return nil
}

// uploadSnapshot выгружает снимок в объектное хранилище, если оно настроено.
// Ошибка выгрузки не срывает закрытие сезона: источник истины — строка архива в БД.
func (s *seasonService) uploadSnapshot(ctx context.Context, archive *models.SeasonArchive, snapshot []byte) {
	if s.uploader == nil {
		return
	}

	key := fmt.Sprintf("archives/season-%d-%s.json", archive.ID, archive.Date.Format("2006-01-02"))
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(snapshot))
	if err != nil {
		s.logger.Error("failed to upload season snapshot", slog.String("key", key), slog.Any("error", err))
		return
	}
	s.logger.Info("season snapshot uploaded", slog.String("key", result.Key), slog.String("location", result.Location))
}
