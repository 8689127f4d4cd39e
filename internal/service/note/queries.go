package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
)

// Get returns a single note by ID. Notes are readable by anyone.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	return s.notes.GetByID(ctx, id)
}

// ListByRecipe returns all notes on a recipe, newest first. An unknown or
// deleted recipe ID yields an empty list, not an error, so readers of a
// recipe that was just removed see its notes gone rather than a failure.
func (s *Service) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*domain.Note, error) {
	notes, err := s.notes.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("note.ListByRecipe: %w", err)
	}
	return notes, nil
}
