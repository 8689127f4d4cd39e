package note

import (
	"strings"

	"github.com/google/uuid"

	"github.com/plateful/recipebox-backend/internal/domain"
)

const maxContentLen = 5000

// CreateInput holds parameters for creating a note.
type CreateInput struct {
	RecipeID uuid.UUID
	Content  string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.RecipeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "recipe_id", Message: "required"})
	}
	errs = append(errs, validateContent(i.Content)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds parameters for updating a note.
type UpdateInput struct {
	ID      uuid.UUID
	Content string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateContent(i.Content)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateContent(content string) []domain.FieldError {
	if strings.TrimSpace(content) == "" {
		return []domain.FieldError{{Field: "content", Message: "required"}}
	}
	if len(content) > maxContentLen {
		return []domain.FieldError{{Field: "content", Message: "too long"}}
	}
	return nil
}
