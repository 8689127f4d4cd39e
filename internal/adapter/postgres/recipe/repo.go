// Package recipe implements the Recipe repository using PostgreSQL.
// It also owns the saved_recipes junction table (user bookmarks).
package recipe

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

const (
	table      = "recipes"
	savedTable = "saved_recipes"
)

var columns = []string{
	"id", "title", "ingredients", "steps", "category",
	"image", "notes", "created_by", "created_at", "updated_at",
}

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recipe repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a recipe by primary key regardless of owner.
// Ownership is checked in the service layer so that "not found" and
// "not authorized" stay distinguishable.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	sql, args, err := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	rec, err := scanRecipe(row)
	if err != nil {
		return nil, postgres.MapError(err, "recipe", id)
	}

	return rec, nil
}

// List returns all recipes ordered by created_at DESC.
func (r *Repo) List(ctx context.Context) ([]*domain.Recipe, error) {
	query := qb.Select(columns...).From(table).OrderBy("created_at DESC")
	return r.list(ctx, query)
}

// ListByCategory returns recipes in the given category, created_at DESC.
func (r *Repo) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Recipe, error) {
	query := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"category": category.String()}).
		OrderBy("created_at DESC")
	return r.list(ctx, query)
}

// Search returns recipes whose title or any ingredient contains the query
// string, case-insensitively, ordered by created_at DESC.
func (r *Repo) Search(ctx context.Context, query string) ([]*domain.Recipe, error) {
	pattern := "%" + escapeLike(query) + "%"
	sel := qb.Select(columns...).From(table).
		Where(squirrel.Or{
			squirrel.Expr("title ILIKE ?", pattern),
			squirrel.Expr("EXISTS (SELECT 1 FROM unnest(ingredients) AS ing WHERE ing ILIKE ?)", pattern),
		}).
		OrderBy("created_at DESC")
	return r.list(ctx, sel)
}

// ListByCreator returns recipes authored by the given user, created_at DESC.
func (r *Repo) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*domain.Recipe, error) {
	query := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"created_by": userID}).
		OrderBy("created_at DESC")
	return r.list(ctx, query)
}

// ListByCreators returns recipes for a set of authors in one query.
// Used by dataloaders to batch User.createdRecipes resolution.
func (r *Repo) ListByCreators(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Recipe, error) {
	if len(userIDs) == 0 {
		return []*domain.Recipe{}, nil
	}
	query := qb.Select(columns...).From(table).
		Where(squirrel.Eq{"created_by": userIDs}).
		OrderBy("created_at DESC")
	return r.list(ctx, query)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new recipe and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	sql, args, err := qb.Insert(table).
		Columns(columns...).
		Values(
			rec.ID, rec.Title, rec.Ingredients, rec.Steps, rec.Category.String(),
			rec.Image, rec.Notes, rec.CreatedBy, rec.CreatedAt, rec.UpdatedAt,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	created, err := scanRecipe(row)
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}

	return created, nil
}

// Update replaces the mutable fields of a recipe and refreshes updated_at.
// created_by is never touched.
func (r *Repo) Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	sql, args, err := qb.Update(table).
		Set("title", rec.Title).
		Set("ingredients", rec.Ingredients).
		Set("steps", rec.Steps).
		Set("category", rec.Category.String()).
		Set("image", rec.Image).
		Set("notes", rec.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rec.ID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	updated, err := scanRecipe(row)
	if err != nil {
		return nil, postgres.MapError(err, "recipe", rec.ID)
	}

	return updated, nil
}

// Delete removes a recipe. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := qb.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "recipe", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Saved recipes (bookmarks)
// ---------------------------------------------------------------------------

// Save bookmarks a recipe for a user. Idempotent: saving twice is a no-op.
func (r *Repo) Save(ctx context.Context, userID, recipeID uuid.UUID) error {
	sql, args, err := qb.Insert(savedTable).
		Columns("user_id", "recipe_id").
		Values(userID, recipeID).
		Suffix("ON CONFLICT (user_id, recipe_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "saved_recipe", recipeID)
	}

	return nil
}

// Unsave removes a bookmark. Idempotent: removing an absent bookmark is a no-op.
func (r *Repo) Unsave(ctx context.Context, userID, recipeID uuid.UUID) error {
	sql, args, err := qb.Delete(savedTable).
		Where(squirrel.Eq{"user_id": userID, "recipe_id": recipeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "saved_recipe", recipeID)
	}

	return nil
}

// ListSavedByUser returns the recipes a user has bookmarked, newest bookmark first.
func (r *Repo) ListSavedByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Recipe, error) {
	query := qb.Select(prefixed("r", columns)...).
		From(table + " r").
		Join(savedTable + " s ON s.recipe_id = r.id").
		Where(squirrel.Eq{"s.user_id": userID}).
		OrderBy("s.saved_at DESC")
	return r.list(ctx, query)
}

// SavedRecipesByUsers returns (userID, recipe) pairs for a set of users in one
// query. Used by dataloaders to batch User.savedRecipes resolution.
func (r *Repo) SavedRecipesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]SavedRecipe, error) {
	if len(userIDs) == 0 {
		return []SavedRecipe{}, nil
	}

	cols := append([]string{"s.user_id"}, prefixed("r", columns)...)
	sql, args, err := qb.Select(cols...).
		From(table + " r").
		Join(savedTable + " s ON s.recipe_id = r.id").
		Where(squirrel.Eq{"s.user_id": userIDs}).
		OrderBy("s.saved_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query saved_recipes: %w", err)
	}
	defer rows.Close()

	var result []SavedRecipe
	for rows.Next() {
		var sr SavedRecipe
		var rec domain.Recipe
		var category string
		err := rows.Scan(
			&sr.UserID,
			&rec.ID, &rec.Title, &rec.Ingredients, &rec.Steps, &category,
			&rec.Image, &rec.Notes, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan saved recipe: %w", err)
		}
		rec.Category = domain.Category(category)
		sr.Recipe = rec
		result = append(result, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved_recipes: %w", err)
	}

	return result, nil
}

// SavedRecipe pairs a bookmarked recipe with the user who bookmarked it.
type SavedRecipe struct {
	UserID uuid.UUID
	Recipe domain.Recipe
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]*domain.Recipe, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	recipes := []*domain.Recipe{}
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}

	return recipes, nil
}

func columnList() string {
	list := columns[0]
	for _, c := range columns[1:] {
		list += ", " + c
	}
	return list
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var rec domain.Recipe
	var category string
	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Ingredients, &rec.Steps, &category,
		&rec.Image, &rec.Notes, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Category = domain.Category(category)
	return &rec, nil
}

// escapeLike escapes the LIKE/ILIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
