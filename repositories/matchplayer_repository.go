package repositories

import (
	"context"
	"database/sql"

	"github.com/tercas-fc/league-system/models"
)

type MatchPlayerRepository interface {
	Create(ctx context.Context, link *models.MatchPlayer) error
	ListByMatch(ctx context.Context, matchID int) ([]models.MatchPlayer, error)
	ListAll(ctx context.Context) ([]models.MatchPlayer, error)
	DeleteAll(ctx context.Context) error
}

type postgresMatchPlayerRepository struct {
	db *sql.DB
}

func NewPostgresMatchPlayerRepository(db *sql.DB) MatchPlayerRepository {
	return &postgresMatchPlayerRepository{db: db}
}

func (r *postgresMatchPlayerRepository) Create(ctx context.Context, link *models.MatchPlayer) error {
	query := `INSERT INTO match_players (match_id, player_id, team) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, link.MatchID, link.PlayerID, link.Team)
	return err
}

func (r *postgresMatchPlayerRepository) ListByMatch(ctx context.Context, matchID int) ([]models.MatchPlayer, error) {
	query := `SELECT match_id, player_id, team FROM match_players WHERE match_id = $1`
	return r.listLinks(ctx, query, matchID)
}

func (r *postgresMatchPlayerRepository) ListAll(ctx context.Context) ([]models.MatchPlayer, error) {
	query := `SELECT match_id, player_id, team FROM match_players`
	return r.listLinks(ctx, query)
}

func (r *postgresMatchPlayerRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM match_players`)
	return err
}

func (r *postgresMatchPlayerRepository) listLinks(ctx context.Context, query string, args ...interface{}) ([]models.MatchPlayer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]models.MatchPlayer, 0)
	for rows.Next() {
		var link models.MatchPlayer
		if scanErr := rows.Scan(&link.MatchID, &link.PlayerID, &link.Team); scanErr != nil {
			return nil, scanErr
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return links, nil
}
