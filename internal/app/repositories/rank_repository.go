package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

// RankRepository handles database operations for ranks
type RankRepository struct {
	db *pgxpool.Pool
}

// NewRankRepository creates a new rank repository
func NewRankRepository(db *pgxpool.Pool) *RankRepository {
	return &RankRepository{
		db: db,
	}
}

// GetAll retrieves all ranks ordered by their ordering index
func (r *RankRepository) GetAll(ctx context.Context) ([]*models.Rank, error) {
	query := `
		SELECT id, name, abbreviation, sort_order, image_url
		FROM ranks
		ORDER BY sort_order
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranks []*models.Rank
	for rows.Next() {
		var rank models.Rank
		if err := rows.Scan(&rank.ID, &rank.Name, &rank.Abbreviation, &rank.SortOrder, &rank.ImageURL); err != nil {
			return nil, err
		}
		ranks = append(ranks, &rank)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ranks, nil
}

// GetByID retrieves a rank by ID
func (r *RankRepository) GetByID(ctx context.Context, id int64) (*models.Rank, error) {
	query := `
		SELECT id, name, abbreviation, sort_order, image_url
		FROM ranks
		WHERE id = $1
	`

	var rank models.Rank
	err := r.db.QueryRow(ctx, query, id).Scan(&rank.ID, &rank.Name, &rank.Abbreviation, &rank.SortOrder, &rank.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRankNotFound
		}
		return nil, fmt.Errorf("error retrieving rank: %w", err)
	}

	return &rank, nil
}

// Create inserts a new rank
func (r *RankRepository) Create(ctx context.Context, rank *models.Rank) error {
	query := `
		INSERT INTO ranks (name, abbreviation, sort_order, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, rank.Name, rank.Abbreviation, rank.SortOrder, rank.ImageURL).Scan(&rank.ID)
	if err != nil {
		return fmt.Errorf("error creating rank: %w", err)
	}

	return nil
}

// Update updates an existing rank
func (r *RankRepository) Update(ctx context.Context, rank *models.Rank) error {
	query := `
		UPDATE ranks
		SET name = $2, abbreviation = $3, sort_order = $4, image_url = $5
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, rank.ID, rank.Name, rank.Abbreviation, rank.SortOrder, rank.ImageURL)
	if err != nil {
		return fmt.Errorf("error updating rank: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRankNotFound
	}

	return nil
}

// Delete removes a rank that no personnel record references
func (r *RankRepository) Delete(ctx context.Context, id int64) error {
	var inUse bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM personnel WHERE rank_id = $1)`, id).Scan(&inUse)
	if err != nil {
		return fmt.Errorf("error checking rank usage: %w", err)
	}

	if inUse {
		return apperrors.NewConflictError("rank is assigned to personnel and cannot be deleted")
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM ranks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting rank: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRankNotFound
	}

	return nil
}
