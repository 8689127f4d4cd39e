package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/plateful/recipebox-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// User by ID
// ---------------------------------------------------------------------------

func newUserBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			u, ok := byID[key]
			if !ok {
				// A recipe or note referencing a missing user means the row
				// outlived its author, which the schema does not allow.
				results[i] = &dataloader.Result[*domain.User]{Error: domain.ErrNotFound}
				continue
			}
			results[i] = &dataloader.Result[*domain.User]{Data: u}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Recipes by creator
// ---------------------------------------------------------------------------

func newRecipesByCreatorBatchFn(repo recipeRepo) dataloader.BatchFunc[uuid.UUID, []*domain.Recipe] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.Recipe] {
		recipes, err := repo.ListByCreators(ctx, keys)
		if err != nil {
			return errorResults[[]*domain.Recipe](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.Recipe, len(keys))
		for _, rec := range recipes {
			grouped[rec.CreatedBy] = append(grouped[rec.CreatedBy], rec)
		}

		return mapResults(keys, grouped, emptySlice[*domain.Recipe])
	}
}

// ---------------------------------------------------------------------------
// Saved recipes by user
// ---------------------------------------------------------------------------

func newSavedRecipesBatchFn(repo recipeRepo) dataloader.BatchFunc[uuid.UUID, []*domain.Recipe] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.Recipe] {
		rows, err := repo.SavedRecipesByUsers(ctx, keys)
		if err != nil {
			return errorResults[[]*domain.Recipe](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.Recipe, len(keys))
		for i := range rows {
			rec := rows[i].Recipe // copy to avoid aliasing the loop row
			grouped[rows[i].UserID] = append(grouped[rows[i].UserID], &rec)
		}

		return mapResults(keys, grouped, emptySlice[*domain.Recipe])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
