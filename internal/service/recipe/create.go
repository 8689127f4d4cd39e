package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
	"github.com/plateful/recipebox-backend/pkg/ctxutil"
)

// Create creates a new recipe owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Recipe, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	rec := &domain.Recipe{
		ID:          uuid.New(),
		Title:       input.Title,
		Ingredients: trimAll(input.Ingredients),
		Steps:       trimAll(input.Steps),
		Category:    input.Category,
		Image:       input.Image,
		Notes:       input.Notes,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.recipes.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("recipe.Create: %w", err)
	}

	s.log.InfoContext(ctx, "recipe created",
		slog.String("recipe_id", created.ID.String()),
		slog.String("user_id", userID.String()))

	return created, nil
}

func trimAll(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.TrimSpace(item)
	}
	return out
}
