package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
)

// Get returns a single recipe by ID. Recipes are readable by anyone,
// authenticated or not.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

// List returns all recipes, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Recipe, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("recipe.List: %w", err)
	}
	return recipes, nil
}

// ListByCategory returns all recipes in the given category, newest first.
func (s *Service) ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Recipe, error) {
	if !category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown category")
	}

	recipes, err := s.recipes.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("recipe.ListByCategory: %w", err)
	}
	return recipes, nil
}

// Search returns recipes whose title or ingredients match the query,
// case-insensitively.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]*domain.Recipe, error) {
	input.Query = domain.NormalizeText(input.Query)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	recipes, err := s.recipes.Search(ctx, input.Query)
	if err != nil {
		return nil, fmt.Errorf("recipe.Search: %w", err)
	}
	return recipes, nil
}

// ListByCreator returns all recipes created by the given user, newest first.
func (s *Service) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*domain.Recipe, error) {
	recipes, err := s.recipes.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recipe.ListByCreator: %w", err)
	}
	return recipes, nil
}
