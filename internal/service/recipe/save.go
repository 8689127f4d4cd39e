package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
	"github.com/plateful/recipebox-backend/pkg/ctxutil"
)

// Save adds a recipe to the authenticated user's saved list. Saving a recipe
// that is already saved is a no-op. Any user may save any existing recipe,
// including their own.
func (s *Service) Save(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := s.recipes.Save(ctx, userID, recipeID); err != nil {
		return nil, fmt.Errorf("recipe.Save: %w", err)
	}

	s.log.InfoContext(ctx, "recipe saved",
		slog.String("recipe_id", recipeID.String()),
		slog.String("user_id", userID.String()))

	return rec, nil
}

// Unsave removes a recipe from the authenticated user's saved list. Unsaving
// a recipe that is not saved is a no-op.
func (s *Service) Unsave(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := s.recipes.Unsave(ctx, userID, recipeID); err != nil {
		return nil, fmt.Errorf("recipe.Unsave: %w", err)
	}

	s.log.InfoContext(ctx, "recipe unsaved",
		slog.String("recipe_id", recipeID.String()),
		slog.String("user_id", userID.String()))

	return rec, nil
}

// ListSaved returns the authenticated user's saved recipes, most recently
// saved first.
func (s *Service) ListSaved(ctx context.Context) ([]*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	recipes, err := s.recipes.ListSavedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recipe.ListSaved: %w", err)
	}
	return recipes, nil
}
