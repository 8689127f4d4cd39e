package note

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

// Create attaches a note to a recipe on behalf of the authenticated user.
// Any user may note any recipe; the recipe must exist.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Content = strings.TrimSpace(input.Content)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.recipes.GetByID(ctx, input.RecipeID); err != nil {
		return nil, err
	}

	now := time.Now()
	n := &domain.Note{
		ID:        uuid.New(),
		RecipeID:  input.RecipeID,
		Content:   input.Content,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.notes.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("note.Create: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("note_id", created.ID.String()),
		slog.String("recipe_id", input.RecipeID.String()),
		slog.String("user_id", userID.String()))

	return created, nil
}
