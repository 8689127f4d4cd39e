package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
	"github.com/plateful/recipebox-backend/pkg/ctxutil"
)

// Delete removes a recipe owned by the authenticated user together with its
// notes. Both deletions run in one transaction so a failure cannot leave
// orphaned notes behind.
func (s *Service) Delete(ctx context.Context, recipeID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.getOwned(ctx, recipeID, userID); err != nil {
		return err
	}

	var notesDeleted int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.notes.DeleteByRecipe(txCtx, recipeID)
		if err != nil {
			return fmt.Errorf("delete notes: %w", err)
		}
		notesDeleted = n

		if err := s.recipes.Delete(txCtx, recipeID); err != nil {
			return fmt.Errorf("delete recipe: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("recipe.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "recipe deleted",
		slog.String("recipe_id", recipeID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("notes_deleted", notesDeleted))

	return nil
}
