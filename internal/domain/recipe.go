package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recipe represents a user-authored recipe.
// CreatedBy is set at creation and never changes afterwards.
// Notes is the denormalized free-text field on the recipe itself; it is a
// separate concept from the Note entity attached via recipe_id.
type Recipe struct {
	ID          uuid.UUID
	Title       string
	Ingredients []string
	Steps       []string
	Category    Category
	Image       string
	Notes       string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Note represents a free-text note attached to a recipe by a user.
type Note struct {
	ID        uuid.UUID
	RecipeID  uuid.UUID
	Content   string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
