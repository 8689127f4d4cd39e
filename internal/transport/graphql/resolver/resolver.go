package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
	"github.com/plateful/recipebox-backend/internal/service/auth"
	"github.com/plateful/recipebox-backend/internal/service/note"
	"github.com/plateful/recipebox-backend/internal/service/recipe"
	"github.com/plateful/recipebox-backend/internal/service/user"
)

//go:generate go run github.com/matryer/moq@latest -out auth_service_mock_test.go -pkg resolver . authService
//go:generate go run github.com/matryer/moq@latest -out recipe_service_mock_test.go -pkg resolver . recipeService
//go:generate go run github.com/matryer/moq@latest -out note_service_mock_test.go -pkg resolver . noteService
//go:generate go run github.com/matryer/moq@latest -out user_service_mock_test.go -pkg resolver . userService

// authService defines what the resolver needs from the Auth service.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
}

// recipeService defines what the resolver needs from the Recipe service.
type recipeService interface {
	Create(ctx context.Context, input recipe.CreateInput) (*domain.Recipe, error)
	Update(ctx context.Context, input recipe.UpdateInput) (*domain.Recipe, error)
	Delete(ctx context.Context, recipeID uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	List(ctx context.Context) ([]*domain.Recipe, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]*domain.Recipe, error)
	Search(ctx context.Context, input recipe.SearchInput) ([]*domain.Recipe, error)
	Save(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error)
	Unsave(ctx context.Context, recipeID uuid.UUID) (*domain.Recipe, error)
}

// noteService defines what the resolver needs from the Note service.
type noteService interface {
	Create(ctx context.Context, input note.CreateInput) (*domain.Note, error)
	Update(ctx context.Context, input note.UpdateInput) (*domain.Note, error)
	Delete(ctx context.Context, noteID uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*domain.Note, error)
}

// userService defines what the resolver needs from the User service.
type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	auth   authService
	recipe recipeService
	note   noteService
	user   userService
	log    *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	auth authService,
	recipe recipeService,
	note noteService,
	user userService,
) *Resolver {
	return &Resolver{
		auth:   auth,
		recipe: recipe,
		note:   note,
		user:   user,
		log:    log.With("component", "graphql"),
	}
}
