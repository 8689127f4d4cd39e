// Package note implements the Note repository using PostgreSQL.
package note

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/plateful/recipebox-backend/internal/adapter/postgres"
	"github.com/plateful/recipebox-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const table = "notes"

var columns = []string{"id", "recipe_id", "content", "created_by", "created_at", "updated_at"}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a note by primary key regardless of owner.
// Ownership is checked in the service layer.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	sql, args, err := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	n, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	return n, nil
}

// ListByRecipe returns all notes for a recipe ordered by created_at DESC.
func (r *Repo) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*domain.Note, error) {
	sql, args, err := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"recipe_id": recipeID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	notes := []*domain.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}

	return notes, nil
}

// Create inserts a new note and returns the persisted row.
func (r *Repo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	sql, args, err := qb.Insert(table).
		Columns(columns...).
		Values(n.ID, n.RecipeID, n.Content, n.CreatedBy, n.CreatedAt, n.UpdatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	created, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", n.ID)
	}

	return created, nil
}

// Update replaces the content of a note and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, content string) (*domain.Note, error) {
	sql, args, err := qb.Update(table).
		Set("content", content).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	updated, err := scanNote(row)
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	return updated, nil
}

// Delete removes a note. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := qb.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "note", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByRecipe removes all notes attached to a recipe.
// Idempotent: a recipe without notes deletes zero rows without error.
// Returns the number of deleted notes.
func (r *Repo) DeleteByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error) {
	sql, args, err := qb.Delete(table).Where(squirrel.Eq{"recipe_id": recipeID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "note", recipeID)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}

func scanNote(row pgx.Row) (*domain.Note, error) {
	var n domain.Note
	err := row.Scan(
		&n.ID, &n.RecipeID, &n.Content, &n.CreatedBy, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
