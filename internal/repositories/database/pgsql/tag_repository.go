package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tagColumns = `tag_id, user_id, name, color, created_at, created_by, last_updated_at, last_updated_by`

type PgxTagRepository struct {
	pool *pgxpool.Pool
}

func newPgxTagRepository(pool *pgxpool.Pool) portsrepo.TagRepositoryFacade {
	return &PgxTagRepository{pool: pool}
}

var _ portsrepo.TagRepositoryFacade = (*PgxTagRepository)(nil)

func (r *PgxTagRepository) SaveTag(ctx context.Context, tag domain.Tag) error {
	m := mapping.ToModelTag(tag)
	query := `INSERT INTO tags (` + tagColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	_, err := r.pool.Exec(ctx, query,
		m.TagID,
		m.UserID,
		m.Name,
		m.Color,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: tag %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save tag %s: %w", m.TagID, err)
	}
	return nil
}

func (r *PgxTagRepository) FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE tag_id = $1;`

	m, err := scanTag(r.pool.QueryRow(ctx, query, tagID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tag by ID %s: %w", tagID, err)
	}
	d := mapping.ToDomainTag(m)
	return &d, nil
}

// FindTagsByIDs retrieves multiple tags by their IDs. Unknown ids are absent from the map.
func (r *PgxTagRepository) FindTagsByIDs(ctx context.Context, tagIDs []string) (map[string]domain.Tag, error) {
	if len(tagIDs) == 0 {
		return map[string]domain.Tag{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+tagColumns+` FROM tags WHERE tag_id = ANY($1);`, tagIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags by IDs: %w", err)
	}
	defer rows.Close()

	tags := make(map[string]domain.Tag)
	for rows.Next() {
		m, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tag row during batch fetch: %w", err)
		}
		tags[m.TagID] = mapping.ToDomainTag(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows during batch fetch: %w", err)
	}
	return tags, nil
}

func (r *PgxTagRepository) ListTags(ctx context.Context, userID string) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+tagColumns+` FROM tags WHERE user_id = $1 ORDER BY name;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags for user %s: %w", userID, err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		m, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tags = append(tags, mapping.ToDomainTag(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}
	return tags, nil
}

// DeleteTag removes the tag; its transaction_tags rows go with it through the cascade.
func (r *PgxTagRepository) DeleteTag(ctx context.Context, tagID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE tag_id = $1;`, tagID)
	if err != nil {
		return fmt.Errorf("failed to delete tag %s: %w", tagID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanTag(row pgx.Row) (models.Tag, error) {
	var m models.Tag
	err := row.Scan(
		&m.TagID,
		&m.UserID,
		&m.Name,
		&m.Color,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
