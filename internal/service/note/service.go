// Package note implements the recipe note business logic.
package note

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
)

type noteRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*domain.Note, error)
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, id uuid.UUID, content string) (*domain.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
}

// Service implements note operations.
type Service struct {
	log     *slog.Logger
	notes   noteRepo
	recipes recipeRepo
}

// NewService creates a new Note service.
func NewService(logger *slog.Logger, notes noteRepo, recipes recipeRepo) *Service {
	return &Service{
		log:     logger.With("service", "note"),
		notes:   notes,
		recipes: recipes,
	}
}

// getOwned loads a note and checks it belongs to userID.
// Existence is checked before ownership so callers can tell a missing note
// from someone else's note.
func (s *Service) getOwned(ctx context.Context, noteID, userID uuid.UUID) (*domain.Note, error) {
	n, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if n.CreatedBy != userID {
		return nil, domain.ErrForbidden
	}
	return n, nil
}
