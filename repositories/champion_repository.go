package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/tercas-fc/league-system/models"
)

var (
	ErrChampionNotFound     = errors.New("champion not found")
	ErrChampionNameConflict = errors.New("champion name conflict")
)

type ChampionRepository interface {
	Create(ctx context.Context, champion *models.Champion) error
	GetByName(ctx context.Context, name string) (*models.Champion, error)
	UpdateTitles(ctx context.Context, id int, titles int) error
	Delete(ctx context.Context, id int) error
	ListByTitlesDesc(ctx context.Context) ([]models.Champion, error)
}

type postgresChampionRepository struct {
	db *sql.DB
}

func NewPostgresChampionRepository(db *sql.DB) ChampionRepository {
	return &postgresChampionRepository{db: db}
}

func (r *postgresChampionRepository) Create(ctx context.Context, champion *models.Champion) error {
	query := `INSERT INTO champions (name, titles) VALUES ($1, $2) RETURNING id`

	err := r.db.QueryRowContext(ctx, query, champion.Name, champion.Titles).Scan(&champion.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "champions_name_key" {
				return ErrChampionNameConflict
			}
		}
		return err
	}
	return nil
}

func (r *postgresChampionRepository) GetByName(ctx context.Context, name string) (*models.Champion, error) {
	query := `SELECT id, name, titles FROM champions WHERE name = $1`

	champion := &models.Champion{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&champion.ID, &champion.Name, &champion.Titles)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChampionNotFound
		}
		return nil, err
	}
	return champion, nil
}

func (r *postgresChampionRepository) UpdateTitles(ctx context.Context, id int, titles int) error {
	query := `UPDATE champions SET titles = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, titles, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrChampionNotFound)
}

func (r *postgresChampionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM champions WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrChampionNotFound)
}

func (r *postgresChampionRepository) ListByTitlesDesc(ctx context.Context) ([]models.Champion, error) {
	query := `SELECT id, name, titles FROM champions ORDER BY titles DESC, name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	champions := make([]models.Champion, 0)
	for rows.Next() {
		var champion models.Champion
		if scanErr := rows.Scan(&champion.ID, &champion.Name, &champion.Titles); scanErr != nil {
			return nil, scanErr
		}
		champions = append(champions, champion)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return champions, nil
}
