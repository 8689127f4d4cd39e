package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
	"github.com/plateful/recipebox-backend/pkg/ctxutil"
)

// Delete removes a note created by the authenticated user.
func (s *Service) Delete(ctx context.Context, noteID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.getOwned(ctx, noteID, userID); err != nil {
		return err
	}

	if err := s.notes.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("note.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("note_id", noteID.String()),
		slog.String("user_id", userID.String()))

	return nil
}
