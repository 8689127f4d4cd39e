// Package recipe implements the recipe business logic: CRUD, search and
// save/unsave bookkeeping.
package recipe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type recipeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Recipe, error)
	Search(ctx context.Context, query string) ([]*domain.Recipe, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]*domain.Recipe, error)
	Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Save(ctx context.Context, userID, recipeID uuid.UUID) error
	Unsave(ctx context.Context, userID, recipeID uuid.UUID) error
	ListSavedByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Recipe, error)
}

type noteRepo interface {
	DeleteByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements recipe operations.
type Service struct {
	log     *slog.Logger
	recipes recipeRepo
	notes   noteRepo
	tx      txManager
}

// NewService creates a new Recipe service.
func NewService(logger *slog.Logger, recipes recipeRepo, notes noteRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "recipe"),
		recipes: recipes,
		notes:   notes,
		tx:      tx,
	}
}

// getOwned loads a recipe and checks it belongs to userID.
// Existence is checked before ownership so callers can tell a missing recipe
// from someone else's recipe.
func (s *Service) getOwned(ctx context.Context, recipeID, userID uuid.UUID) (*domain.Recipe, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if rec.CreatedBy != userID {
		return nil, domain.ErrForbidden
	}
	return rec, nil
}
