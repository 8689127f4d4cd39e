package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/plateful/recipebox-backend/internal/domain"
	"github.com/plateful/recipebox-backend/pkg/ctxutil"
)

// Update rewrites the content of a note created by the authenticated user.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Content = strings.TrimSpace(input.Content)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.getOwned(ctx, input.ID, userID); err != nil {
		return nil, err
	}

	updated, err := s.notes.Update(ctx, input.ID, input.Content)
	if err != nil {
		return nil, fmt.Errorf("note.Update: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("note_id", updated.ID.String()),
		slog.String("user_id", userID.String()))

	return updated, nil
}
