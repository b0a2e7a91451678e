package glossary

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/glossary-backend/internal/config"
	"github.com/heartmarshall/glossary-backend/internal/domain"
)

// CreateEntryInput holds the parameters for creating a glossary entry.
// Rules defaults to an empty sequence; Formula defaults to absent.
type CreateEntryInput struct {
	Title       string
	Description string
	Rules       []string
	Formula     *string
}

// Validate checks all fields against the configured limits and collects all errors.
func (i CreateEntryInput) Validate(cfg config.GlossaryConfig) error {
	errs := validateEntryFields(i.Title, i.Description, i.Rules, cfg)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds the full replacement state for an entry update.
// Every field is applied wholesale; there are no partial-patch semantics.
type UpdateEntryInput struct {
	ID          uuid.UUID
	Title       string
	Description string
	Rules       []string
	Formula     *string
}

// Validate checks all fields against the configured limits and collects all errors.
func (i UpdateEntryInput) Validate(cfg config.GlossaryConfig) error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateEntryFields(i.Title, i.Description, i.Rules, cfg)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteEntryInput holds the parameters for deleting a glossary entry.
type DeleteEntryInput struct {
	ID uuid.UUID
}

// Validate checks all fields.
func (i DeleteEntryInput) Validate() error {
	if i.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// validateEntryFields holds the checks shared by create and update.
func validateEntryFields(title, description string, rules []string, cfg config.GlossaryConfig) []domain.FieldError {
	var errs []domain.FieldError

	title = strings.TrimSpace(title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > cfg.MaxTitleLen {
		errs = append(errs, domain.FieldError{
			Field:   "title",
			Message: fmt.Sprintf("max %d characters", cfg.MaxTitleLen),
		})
	}

	if strings.TrimSpace(description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	if len(rules) > cfg.MaxRulesPerEntry {
		errs = append(errs, domain.FieldError{
			Field:   "rules",
			Message: fmt.Sprintf("max %d rules per entry", cfg.MaxRulesPerEntry),
		})
	}

	return errs
}
