package recipe

import (
	"strings"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
)

const (
	maxTitleLen    = 200
	maxListItems   = 100
	maxListItemLen = 500
	maxFreeTextLen = 5000
	maxImageURLLen = 2048
)

// CreateInput holds parameters for creating a recipe.
type CreateInput struct {
	Title       string
	Ingredients []string
	Steps       []string
	Category    domain.Category
	Image       string
	Notes       string
}

// Validate validates the create input. Title, ingredients and steps are
// required; blank list elements are rejected rather than silently dropped.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	errs = append(errs, validateStringList("ingredients", i.Ingredients)...)
	errs = append(errs, validateStringList("steps", i.Steps)...)

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if len(i.Image) > maxImageURLLen {
		errs = append(errs, domain.FieldError{Field: "image", Message: "too long"})
	}
	if len(i.Notes) > maxFreeTextLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for updating a recipe. Nil fields are left
// unchanged.
type UpdateInput struct {
	ID          uuid.UUID
	Title       *string
	Ingredients []string
	Steps       []string
	Category    *domain.Category
	Image       *string
	Notes       *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		} else if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}

	if i.Ingredients != nil {
		errs = append(errs, validateStringList("ingredients", i.Ingredients)...)
	}
	if i.Steps != nil {
		errs = append(errs, validateStringList("steps", i.Steps)...)
	}

	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if i.Image != nil && len(*i.Image) > maxImageURLLen {
		errs = append(errs, domain.FieldError{Field: "image", Message: "too long"})
	}
	if i.Notes != nil && len(*i.Notes) > maxFreeTextLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchInput holds parameters for text search over recipes.
type SearchInput struct {
	Query string
}

// Validate validates the search input.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	} else if len(i.Query) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "query", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateStringList(field string, items []string) []domain.FieldError {
	if len(items) == 0 {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if len(items) > maxListItems {
		return []domain.FieldError{{Field: field, Message: "too many items"}}
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return []domain.FieldError{{Field: field, Message: "blank items are not allowed"}}
		}
		if len(item) > maxListItemLen {
			return []domain.FieldError{{Field: field, Message: "item too long"}}
		}
	}
	return nil
}
