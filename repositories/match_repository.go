package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tercas-fc/league-system/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	GetByDate(ctx context.Context, date time.Time) (*models.Match, error)
	// NextScheduled возвращает ближайший запланированный матч с датой не раньше from.
	NextScheduled(ctx context.Context, from time.Time) (*models.Match, error)
	ListByDateAsc(ctx context.Context) ([]models.Match, error)
	DeleteAll(ctx context.Context) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `id, date, result, is_double_points, status, time, location, opponent`

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (date, result, is_double_points, status, time, location, opponent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		match.Date,
		match.Result,
		match.IsDoublePoints,
		match.Status,
		match.Time,
		match.Location,
		match.Opponent,
	).Scan(&match.ID)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	return r.scanMatch(ctx, query, id)
}

func (r *postgresMatchRepository) GetByDate(ctx context.Context, date time.Time) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE date = $1 ORDER BY id ASC LIMIT 1`
	return r.scanMatch(ctx, query, date)
}

func (r *postgresMatchRepository) NextScheduled(ctx context.Context, from time.Time) (*models.Match, error) {
	query := `
		SELECT ` + matchColumns + `
		FROM matches
		WHERE status = $1 AND date >= $2
		ORDER BY date ASC
		LIMIT 1`
	return r.scanMatch(ctx, query, models.MatchStatusScheduled, from)
}

func (r *postgresMatchRepository) ListByDateAsc(ctx context.Context) ([]models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches ORDER BY date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		match, scanErr := scanMatchRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, *match)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}

func (r *postgresMatchRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM matches`)
	return err
}

func (r *postgresMatchRepository) scanMatch(ctx context.Context, query string, args ...interface{}) (*models.Match, error) {
	row := r.db.QueryRowContext(ctx, query, args...)
	match, err := scanMatchRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func scanMatchRow(scanner interface{ Scan(...interface{}) error }) (*models.Match, error) {
	var match models.Match
	var result sql.NullString

	err := scanner.Scan(
		&match.ID,
		&match.Date,
		&result,
		&match.IsDoublePoints,
		&match.Status,
		&match.Time,
		&match.Location,
		&match.Opponent,
	)
	if err != nil {
		return nil, err
	}

	if result.Valid {
		value := models.MatchResult(result.String)
		match.Result = &value
	}

	return &match, nil
}
