package validation

import "strings"

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UpdateProfileRequest mirrors the fields needed for profile update validation.
type UpdateProfileRequest struct {
	Name  string
	Email string
}

// ValidateUpdateProfileRequest validates the fields of a profile update
// request. Returns a slice of field errors; empty slice means valid.
func ValidateUpdateProfileRequest(req UpdateProfileRequest) []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be at most 255 characters"})
	}

	email := strings.TrimSpace(req.Email)
	at := strings.Index(email, "@")
	switch {
	case email == "":
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	case len(email) > 255:
		errs = append(errs, FieldError{Field: "email", Message: "email must be at most 255 characters"})
	case at < 1 || at == len(email)-1:
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid address"})
	}

	return errs
}
