package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp1r1tt/dashboard2025/internal/api/validation"
)

func TestValidateUpdateProfileRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        validation.UpdateProfileRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  validation.UpdateProfileRequest{Name: "Ivan", Email: "ivan@example.com"},
		},
		{
			name:       "missing name",
			req:        validation.UpdateProfileRequest{Email: "ivan@example.com"},
			wantFields: []string{"name"},
		},
		{
			name:       "missing email",
			req:        validation.UpdateProfileRequest{Name: "Ivan"},
			wantFields: []string{"email"},
		},
		{
			name:       "both missing",
			req:        validation.UpdateProfileRequest{Name: "  ", Email: ""},
			wantFields: []string{"name", "email"},
		},
		{
			name:       "email without at sign",
			req:        validation.UpdateProfileRequest{Name: "Ivan", Email: "ivan.example.com"},
			wantFields: []string{"email"},
		},
		{
			name:       "email with trailing at sign",
			req:        validation.UpdateProfileRequest{Name: "Ivan", Email: "ivan@"},
			wantFields: []string{"email"},
		},
		{
			name:       "name too long",
			req:        validation.UpdateProfileRequest{Name: strings.Repeat("x", 256), Email: "ivan@example.com"},
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			errs := validation.ValidateUpdateProfileRequest(tt.req)

			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}
