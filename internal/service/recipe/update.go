package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/plateful/recipebox-backend/internal/domain"
	"github.com/plateful/recipebox-backend/pkg/ctxutil"
)

// Update modifies a recipe owned by the authenticated user. Fields left nil
// in the input keep their stored values; the owner never changes.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.getOwned(ctx, input.ID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		rec.Title = strings.TrimSpace(*input.Title)
	}
	if input.Ingredients != nil {
		rec.Ingredients = trimAll(input.Ingredients)
	}
	if input.Steps != nil {
		rec.Steps = trimAll(input.Steps)
	}
	if input.Category != nil {
		rec.Category = *input.Category
	}
	if input.Image != nil {
		rec.Image = *input.Image
	}
	if input.Notes != nil {
		rec.Notes = *input.Notes
	}

	updated, err := s.recipes.Update(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("recipe.Update: %w", err)
	}

	s.log.InfoContext(ctx, "recipe updated",
		slog.String("recipe_id", updated.ID.String()),
		slog.String("user_id", userID.String()))

	return updated, nil
}
