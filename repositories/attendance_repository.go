package repositories

import (
	"context"
	"database/sql"

	"github.com/tercas-fc/league-system/models"
)

type AttendanceRepository interface {
	// Upsert создаёт или обновляет RSVP по паре (match_id, player_id).
	Upsert(ctx context.Context, attendance *models.Attendance) error
	CountGoing(ctx context.Context, matchID int) (int, error)
}

type postgresAttendanceRepository struct {
	db *sql.DB
}

func NewPostgresAttendanceRepository(db *sql.DB) AttendanceRepository {
	return &postgresAttendanceRepository{db: db}
}

func (r *postgresAttendanceRepository) Upsert(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (match_id, player_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT ON CONSTRAINT attendance_match_player_key
		DO UPDATE SET status = EXCLUDED.status
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		attendance.MatchID,
		attendance.PlayerID,
		attendance.Status,
	).Scan(&attendance.ID)
}

func (r *postgresAttendanceRepository) CountGoing(ctx context.Context, matchID int) (int, error) {
	query := `SELECT COUNT(*) FROM attendance WHERE match_id = $1 AND status = $2`

	var count int
	err := r.db.QueryRowContext(ctx, query, matchID, models.AttendanceGoing).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
