package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/tercas-fc/league-system/models"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerNameConflict = errors.New("player name conflict")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	GetByUsername(ctx context.Context, username string) (*models.Player, error)
	ListActive(ctx context.Context) ([]models.Player, error)
	ListAll(ctx context.Context) ([]models.Player, error)
	ListActiveFixed(ctx context.Context) ([]models.Player, error)
	ListFixed(ctx context.Context) ([]models.Player, error)
	UpdateIsFixed(ctx context.Context, id int, isFixed bool) error
	UpdateBalance(ctx context.Context, id int, balance float64) error
	SetPreviousRank(ctx context.Context, id int, rank int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, name, username, password_hash, role, is_active, balance, is_fixed, previous_rank`

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (name, username, password_hash, role, is_active, balance, is_fixed, previous_rank)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		player.Name,
		player.Username,
		player.PasswordHash,
		player.Role,
		player.IsActive,
		player.Balance,
		player.IsFixed,
		player.PreviousRank,
	).Scan(&player.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "players_name_key" { // unique_violation
				return ErrPlayerNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	return r.scanPlayer(ctx, query, id)
}

func (r *postgresPlayerRepository) GetByUsername(ctx context.Context, username string) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE username = $1`
	return r.scanPlayer(ctx, query, username)
}

func (r *postgresPlayerRepository) ListActive(ctx context.Context) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE is_active = TRUE ORDER BY name ASC`
	return r.listPlayers(ctx, query)
}

func (r *postgresPlayerRepository) ListAll(ctx context.Context) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY name ASC`
	return r.listPlayers(ctx, query)
}

// ListActiveFixed возвращает игроков, попадающих в турнирную таблицу.
func (r *postgresPlayerRepository) ListActiveFixed(ctx context.Context) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE is_active = TRUE AND is_fixed = TRUE ORDER BY name ASC`
	return r.listPlayers(ctx, query)
}

func (r *postgresPlayerRepository) ListFixed(ctx context.Context) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE is_fixed = TRUE ORDER BY name ASC`
	return r.listPlayers(ctx, query)
}

func (r *postgresPlayerRepository) UpdateIsFixed(ctx context.Context, id int, isFixed bool) error {
	query := `UPDATE players SET is_fixed = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, isFixed, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdateBalance(ctx context.Context, id int, balance float64) error {
	query := `UPDATE players SET balance = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, balance, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) SetPreviousRank(ctx context.Context, id int, rank int) error {
	query := `UPDATE players SET previous_rank = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, rank, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) scanPlayer(ctx context.Context, query string, args ...interface{}) (*models.Player, error) {
	player := &models.Player{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&player.ID,
		&player.Name,
		&player.Username,
		&player.PasswordHash,
		&player.Role,
		&player.IsActive,
		&player.Balance,
		&player.IsFixed,
		&player.PreviousRank,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

func (r *postgresPlayerRepository) listPlayers(ctx context.Context, query string) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var player models.Player
		scanErr := rows.Scan(
			&player.ID,
			&player.Name,
			&player.Username,
			&player.PasswordHash,
			&player.Role,
			&player.IsActive,
			&player.Balance,
			&player.IsFixed,
			&player.PreviousRank,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		players = append(players, player)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}
