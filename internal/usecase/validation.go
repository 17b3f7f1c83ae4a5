package usecase

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

var nonDigits = regexp.MustCompile(`\D`)

// ValidateCreateLeadInput checks every field and reports every violation, not
// just the first one.
func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(strings.TrimSpace(input.Name)) < 2 {
		errors = append(errors, ValidationError{"name", "must have at least 2 characters"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.ProjectBrief) == "" {
		errors = append(errors, ValidationError{"project_brief", "is required"})
	}

	if strings.TrimSpace(input.Budget) == "" {
		errors = append(errors, ValidationError{"budget", "is required"})
	} else if !entity.IsValidBudget(input.Budget) {
		errors = append(errors, ValidationError{"budget", "must be one of the listed budget ranges"})
	}

	if strings.TrimSpace(input.ServiceID) == "" {
		errors = append(errors, ValidationError{"service_id", "is required"})
	}
	if strings.TrimSpace(input.ServiceName) == "" {
		errors = append(errors, ValidationError{"service_name", "is required"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := nonDigits.ReplaceAllString(phone, "")

	return len(cleaned) >= 10 && len(cleaned) <= 13
}
