package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
	authsvc "github.com/plateful/recipebox-backend/internal/service/auth"
	notesvc "github.com/plateful/recipebox-backend/internal/service/note"
	recipesvc "github.com/plateful/recipebox-backend/internal/service/recipe"
	usersvc "github.com/plateful/recipebox-backend/internal/service/user"
	"github.com/plateful/recipebox-backend/internal/transport/graphql/dataloader"
	"github.com/plateful/recipebox-backend/internal/transport/graphql/generated"
)

// Register is the resolver for the register field.
func (r *mutationResolver) Register(ctx context.Context, input generated.RegisterInput) (*generated.AuthPayload, error) {
	result, err := r.auth.Register(ctx, authsvc.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}
	return authPayload(result), nil
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, input generated.LoginInput) (*generated.AuthPayload, error) {
	result, err := r.auth.Login(ctx, authsvc.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}
	return authPayload(result), nil
}

// RefreshToken is the resolver for the refreshToken field.
func (r *mutationResolver) RefreshToken(ctx context.Context, refreshToken string) (*generated.AuthPayload, error) {
	result, err := r.auth.Refresh(ctx, authsvc.RefreshInput{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	return authPayload(result), nil
}

// Logout is the resolver for the logout field.
func (r *mutationResolver) Logout(ctx context.Context) (bool, error) {
	if err := r.auth.Logout(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// CreateRecipe is the resolver for the createRecipe field.
func (r *mutationResolver) CreateRecipe(ctx context.Context, input generated.RecipeInput) (*domain.Recipe, error) {
	return r.recipe.Create(ctx, recipesvc.CreateInput{
		Title:       input.Title,
		Ingredients: input.Ingredients,
		Steps:       input.Steps,
		Category:    input.Category,
		Image:       deref(input.Image),
		Notes:       deref(input.Notes),
	})
}

// UpdateRecipe is the resolver for the updateRecipe field.
// The input replaces all mutable fields; an omitted image or notes clears the
// stored value.
func (r *mutationResolver) UpdateRecipe(ctx context.Context, id uuid.UUID, input generated.RecipeInput) (*domain.Recipe, error) {
	image := deref(input.Image)
	notes := deref(input.Notes)
	return r.recipe.Update(ctx, recipesvc.UpdateInput{
		ID:          id,
		Title:       &input.Title,
		Ingredients: input.Ingredients,
		Steps:       input.Steps,
		Category:    &input.Category,
		Image:       &image,
		Notes:       &notes,
	})
}

// DeleteRecipe is the resolver for the deleteRecipe field.
func (r *mutationResolver) DeleteRecipe(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.recipe.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// CreateNote is the resolver for the createNote field.
func (r *mutationResolver) CreateNote(ctx context.Context, input generated.NoteInput) (*domain.Note, error) {
	return r.note.Create(ctx, notesvc.CreateInput{
		RecipeID: input.RecipeID,
		Content:  input.Content,
	})
}

// UpdateNote is the resolver for the updateNote field.
func (r *mutationResolver) UpdateNote(ctx context.Context, id uuid.UUID, content string) (*domain.Note, error) {
	return r.note.Update(ctx, notesvc.UpdateInput{ID: id, Content: content})
}

// DeleteNote is the resolver for the deleteNote field.
func (r *mutationResolver) DeleteNote(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.note.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// SaveRecipe is the resolver for the saveRecipe field.
func (r *mutationResolver) SaveRecipe(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	return r.recipe.Save(ctx, recipeID)
}

// UnsaveRecipe is the resolver for the unsaveRecipe field.
func (r *mutationResolver) UnsaveRecipe(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error) {
	return r.recipe.Unsave(ctx, recipeID)
}

// UpdateProfile is the resolver for the updateProfile field.
func (r *mutationResolver) UpdateProfile(ctx context.Context, input generated.UpdateProfileInput) (*domain.User, error) {
	return r.user.UpdateProfile(ctx, usersvc.UpdateProfileInput{
		Name:      input.Name,
		AvatarURL: input.AvatarURL,
	})
}

// CreatedBy is the resolver for the createdBy field.
func (r *noteResolver) CreatedBy(ctx context.Context, obj *domain.Note) (*domain.User, error) {
	return dataloader.FromContext(ctx).UserByID.Load(ctx, obj.CreatedBy)()
}

// Recipes is the resolver for the recipes field.
func (r *queryResolver) Recipes(ctx context.Context) ([]*domain.Recipe, error) {
	return r.recipe.List(ctx)
}

// Recipe is the resolver for the recipe field.
func (r *queryResolver) Recipe(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	return r.recipe.Get(ctx, id)
}

// RecipesByCategory is the resolver for the recipesByCategory field.
func (r *queryResolver) RecipesByCategory(ctx context.Context, category domain.Category) ([]*domain.Recipe, error) {
	return r.recipe.ListByCategory(ctx, category)
}

// SearchRecipes is the resolver for the searchRecipes field.
func (r *queryResolver) SearchRecipes(ctx context.Context, query string) ([]*domain.Recipe, error) {
	return r.recipe.Search(ctx, recipesvc.SearchInput{Query: query})
}

// Notes is the resolver for the notes field.
func (r *queryResolver) Notes(ctx context.Context, recipeID uuid.UUID) ([]*domain.Note, error) {
	return r.note.ListByRecipe(ctx, recipeID)
}

// Note is the resolver for the note field.
func (r *queryResolver) Note(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	return r.note.Get(ctx, id)
}

// Me is the resolver for the me field.
func (r *queryResolver) Me(ctx context.Context) (*domain.User, error) {
	return r.user.GetProfile(ctx)
}

// User is the resolver for the user field.
func (r *queryResolver) User(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.user.GetByID(ctx, id)
}

// CreatedBy is the resolver for the createdBy field.
func (r *recipeResolver) CreatedBy(ctx context.Context, obj *domain.Recipe) (*domain.User, error) {
	return dataloader.FromContext(ctx).UserByID.Load(ctx, obj.CreatedBy)()
}

// CreatedRecipes is the resolver for the createdRecipes field.
func (r *userResolver) CreatedRecipes(ctx context.Context, obj *domain.User) ([]*domain.Recipe, error) {
	return dataloader.FromContext(ctx).RecipesByCreator.Load(ctx, obj.ID)()
}

// SavedRecipes is the resolver for the savedRecipes field.
func (r *userResolver) SavedRecipes(ctx context.Context, obj *domain.User) ([]*domain.Recipe, error) {
	return dataloader.FromContext(ctx).SavedRecipesByUser.Load(ctx, obj.ID)()
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Note returns generated.NoteResolver implementation.
func (r *Resolver) Note() generated.NoteResolver { return &noteResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// Recipe returns generated.RecipeResolver implementation.
func (r *Resolver) Recipe() generated.RecipeResolver { return &recipeResolver{r} }

// User returns generated.UserResolver implementation.
func (r *Resolver) User() generated.UserResolver { return &userResolver{r} }

type mutationResolver struct{ *Resolver }
type noteResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type recipeResolver struct{ *Resolver }
type userResolver struct{ *Resolver }

// authPayload maps a service auth result onto the GraphQL payload type.
func authPayload(result *authsvc.AuthResult) *generated.AuthPayload {
	return &generated.AuthPayload{
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         result.User,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
