package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sampleRequest{Email: "a@x.com", Password: "secret123"}))

	errs := ValidateStruct(sampleRequest{Email: "not-an-email", Password: "x"})
	require.Len(t, errs, 2)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Minimum length is 6", errs["Password"])
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	assert.Equal(t, "Email: Invalid email format", msg)
}

func TestFormatValidationErrorsStableOrder(t *testing.T) {
	errs := map[string]string{
		"Password": "Minimum length is 6",
		"Email":    "Invalid email format",
	}

	// fields always come out sorted, regardless of map iteration order
	want := "Email: Invalid email format; Password: Minimum length is 6"
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, FormatValidationErrors(errs))
	}
}
