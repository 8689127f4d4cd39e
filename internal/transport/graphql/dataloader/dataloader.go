// Package dataloader provides per-request DataLoaders for batching GraphQL
// resolver queries into single SQL calls. DataLoaders call repositories
// directly, bypassing the service layer; everything they load is public data
// (users and recipes are readable by anyone).
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/plateful/recipebox-backend/internal/adapter/postgres/recipe"
	"github.com/plateful/recipebox-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
}

type recipeRepo interface {
	ListByCreators(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Recipe, error)
	SavedRecipesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]recipe.SavedRecipe, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User   userRepo
	Recipe recipeRepo
}

// ---------------------------------------------------------------------------
// Loaders holds all per-request DataLoader instances.
// ---------------------------------------------------------------------------

// Loaders contains the per-request DataLoaders. Created via NewLoaders once
// per request (loaders cache results within a single request).
type Loaders struct {
	UserByID           *dataloader.Loader[uuid.UUID, *domain.User]
	RecipesByCreator   *dataloader.Loader[uuid.UUID, []*domain.Recipe]
	SavedRecipesByUser *dataloader.Loader[uuid.UUID, []*domain.Recipe]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UserByID:           newLoader(newUserBatchFn(repos.User)),
		RecipesByCreator:   newLoader(newRecipesByCreatorBatchFn(repos.Recipe)),
		SavedRecipesByUser: newLoader(newSavedRecipesBatchFn(repos.Recipe)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
