package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tercas-fc/league-system/models"
)

var ErrArchiveNotFound = errors.New("season archive not found")

type ArchiveRepository interface {
	Create(ctx context.Context, archive *models.SeasonArchive) error
	ListByDateDesc(ctx context.Context) ([]models.SeasonArchive, error)
	Delete(ctx context.Context, id int) error
}

type postgresArchiveRepository struct {
	db *sql.DB
}

func NewPostgresArchiveRepository(db *sql.DB) ArchiveRepository {
	return &postgresArchiveRepository{db: db}
}

func (r *postgresArchiveRepository) Create(ctx context.Context, archive *models.SeasonArchive) error {
	query := `
		INSERT INTO season_archive (season_name, data_json, date)
		VALUES ($1, $2, $3)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		archive.SeasonName,
		archive.DataJSON,
		archive.Date,
	).Scan(&archive.ID)
}

func (r *postgresArchiveRepository) ListByDateDesc(ctx context.Context) ([]models.SeasonArchive, error) {
	query := `SELECT id, season_name, data_json, date FROM season_archive ORDER BY date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	archives := make([]models.SeasonArchive, 0)
	for rows.Next() {
		var archive models.SeasonArchive
		scanErr := rows.Scan(&archive.ID, &archive.SeasonName, &archive.DataJSON, &archive.Date)
		if scanErr != nil {
			return nil, scanErr
		}
		archives = append(archives, archive)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return archives, nil
}

func (r *postgresArchiveRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM season_archive WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrArchiveNotFound)
}
