package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateful/recipebox-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
// Returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$seeded-hash-not-a-real-one-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedRecipe creates a recipe owned by the given user.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID) domain.Recipe {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	recipe := domain.Recipe{
		ID:          uuid.New(),
		Title:       "Seeded Recipe " + suffix,
		Ingredients: []string{"flour", "egg"},
		Steps:       []string{"mix", "cook"},
		Category:    domain.CategoryBreakfast,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO recipes (id, title, ingredients, steps, category, image, notes, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		recipe.ID, recipe.Title, recipe.Ingredients, recipe.Steps, recipe.Category.String(),
		recipe.Image, recipe.Notes, recipe.CreatedBy, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe insert: %v", err)
	}

	return recipe
}

// SeedNote creates a note on the given recipe owned by the given user.
func SeedNote(t *testing.T, pool *pgxpool.Pool, recipeID, createdBy uuid.UUID) domain.Note {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	note := domain.Note{
		ID:        uuid.New(),
		RecipeID:  recipeID,
		Content:   "Seeded note " + uniqueSuffix(),
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO notes (id, recipe_id, content, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		note.ID, note.RecipeID, note.Content, note.CreatedBy, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNote insert: %v", err)
	}

	return note
}
