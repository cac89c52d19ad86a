package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурсы
	ErrPlayerNotFound   = errors.New("player not found")
	ErrMatchNotFound    = errors.New("match not found")
	ErrChampionNotFound = errors.New("champion not found")
	ErrArchiveNotFound  = errors.New("history entry not found")

	// Конфликты
	ErrPlayerNameConflict = errors.New("player already exists")

	// Ошибки валидации и бизнес-правил
	ErrPlayerNameRequired      = errors.New("player name is required")
	ErrMatchInvalidResult      = errors.New("invalid match result")
	ErrMatchRosterRequired     = errors.New("both team rosters must be non-empty")
	ErrAttendanceInvalidStatus = errors.New("attendance status must be going or not_going")
	ErrSeasonNameRequired      = errors.New("season name is required")
	ErrSeasonNoData            = errors.New("no match data available")

	// Аутентификация
	ErrAuthInvalidCredentials = errors.New("invalid username or password")
)
