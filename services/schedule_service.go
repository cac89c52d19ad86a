package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/tercas-fc/league-system/models"
	"github.com/tercas-fc/league-system/repositories"
)

// Расписание лиги: игра по вторникам в 22:30, конвокатория открывается
// в среду прошлой недели в 09:00 и закрывается в день игры в 19:00.
const (
	matchWeekday = time.Tuesday
	matchHour    = 22
	matchMinute  = 30

	openWeekday = time.Wednesday
	openHour    = 9

	closeHour = 19

	defaultLocation = "Campo Principal"
	defaultOpponent = "Jogo Interno"
)

type NextMatchInfo struct {
	ID               int     `json:"id"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Location         *string `json:"location,omitempty"`
	Opponent         *string `json:"opponent,omitempty"`
	ConfirmedPlayers int     `json:"confirmed_players"`
	IsOpen           bool    `json:"is_open"`
}

type ScheduleService interface {
	// NextMatch находит ближайший запланированный матч; если его нет,
	// создаёт слот на следующий вторник.
	NextMatch(ctx context.Context) (*NextMatchInfo, error)
	UpdateAttendance(ctx context.Context, matchID, playerID int, status string) error
}

type scheduleService struct {
	matchRepo      repositories.MatchRepository
	attendanceRepo repositories.AttendanceRepository
	clock          clockwork.Clock
}

func NewScheduleService(
	matchRepo repositories.MatchRepository,
	attendanceRepo repositories.AttendanceRepository,
	clock clockwork.Clock,
) ScheduleService {
	return &scheduleService{
		matchRepo:      matchRepo,
		attendanceRepo: attendanceRepo,
		clock:          clock,
	}
}

func (s *scheduleService) NextMatch(ctx context.Context) (*NextMatchInfo, error) {
	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	match, err := s.matchRepo.NextScheduled(ctx, today)
	if err != nil {
		if !errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, fmt.Errorf("failed to find next scheduled match: %w", err)
		}
		match, err = s.scheduleNextSlot(ctx, now)
		if err != nil {
			return nil, err
		}
	}

	kickoff := kickoffTime(match)
	isOpen := convocationOpen(now, kickoff)

	confirmed, err := s.attendanceRepo.CountGoing(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count confirmations: %w", err)
	}

	info := &NextMatchInfo{
		ID:               match.ID,
		Date:             match.Date.Format("2006-01-02"),
		Time:             kickoff.Format("15:04"),
		Location:         match.Location,
		Opponent:         match.Opponent,
		ConfirmedPlayers: confirmed,
		IsOpen:           isOpen,
	}
	return info, nil
}

func (s *scheduleService) UpdateAttendance(ctx context.Context, matchID, playerID int, status string) error {
	if status != models.AttendanceGoing && status != models.AttendanceNotGoing {
		return ErrAttendanceInvalidStatus
	}

	_, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to load match: %w", err)
	}

	attendance := &models.Attendance{
		MatchID:  matchID,
		PlayerID: playerID,
		Status:   status,
	}
	if err := s.attendanceRepo.Upsert(ctx, attendance); err != nil {
		return fmt.Errorf("failed to save attendance: %w", err)
	}
	return nil
}

// scheduleNextSlot создаёт слот на следующий вторник, если на эту дату
// ещё нет матча.
func (s *scheduleService) scheduleNextSlot(ctx context.Context, now time.Time) (*models.Match, error) {
	target := NextMatchDate(now)
	targetDate := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)

	existing, err := s.matchRepo.GetByDate(ctx, targetDate)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to check slot date: %w", err)
	}

	kickoff := fmt.Sprintf("%02d:%02d", matchHour, matchMinute)
	location := defaultLocation
	opponent := defaultOpponent
	match := &models.Match{
		Date:     targetDate,
		Status:   models.MatchStatusScheduled,
		Time:     &kickoff,
		Location: &location,
		Opponent: &opponent,
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to schedule next match: %w", err)
	}
	return match, nil
}

// NextMatchDate вычисляет дату и время следующего игрового вторника.
// Если сегодняшний матч уже начался, берётся следующая неделя.
func NextMatchDate(now time.Time) time.Time {
	daysAhead := int(matchWeekday) - int(now.Weekday())
	if daysAhead < 0 || (daysAhead == 0 && now.Hour() > matchHour) {
		daysAhead += 7
	}

	next := now.AddDate(0, 0, daysAhead)
	return time.Date(next.Year(), next.Month(), next.Day(), matchHour, matchMinute, 0, 0, now.Location())
}

// convocationOpen проверяет, попадает ли now в окно конвокатории.
func convocationOpen(now, kickoff time.Time) bool {
	daysBack := (int(kickoff.Weekday()) - int(openWeekday) + 7) % 7
	if daysBack == 0 && openWeekday != matchWeekday {
		daysBack = 7
	}

	openAt := kickoff.AddDate(0, 0, -daysBack)
	openAt = time.Date(openAt.Year(), openAt.Month(), openAt.Day(), openHour, 0, 0, 0, openAt.Location())
	closeAt := time.Date(kickoff.Year(), kickoff.Month(), kickoff.Day(), closeHour, 0, 0, 0, kickoff.Location())

	return !now.Before(openAt) && !now.After(closeAt)
}

func kickoffTime(match *models.Match) time.Time {
	hour, minute := matchHour, matchMinute
	if match.Time != nil {
		if parsed, err := time.Parse("15:04", *match.Time); err == nil {
			hour, minute = parsed.Hour(), parsed.Minute()
		}
	}
	return time.Date(match.Date.Year(), match.Date.Month(), match.Date.Day(), hour, minute, 0, 0, match.Date.Location())
}
