package validator

import (
	"errors"
	"testing"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Name  string `validate:"required,min=3"`
	Email string `validate:"required,email"`
	Runs  int    `validate:"max=6"`
}

func TestParseErrorReadableMessages(t *testing.T) {
	t.Parallel()
	v := gpvalidator.New()

	err := v.Struct(signupPayload{Email: "not-an-email", Runs: 7})
	require.Error(t, err)

	fields := ParseError(err)
	assert.Equal(t, "Name is required", fields["Name"])
	assert.Equal(t, "Email must be a valid email address", fields["Email"])
	assert.Equal(t, "Runs must be at most 6", fields["Runs"])
}

func TestParseErrorMinLength(t *testing.T) {
	t.Parallel()
	v := gpvalidator.New()

	err := v.Struct(signupPayload{Name: "ab", Email: "rohan@example.com"})
	require.Error(t, err)

	fields := ParseError(err)
	assert.Equal(t, "Name must be at least 3", fields["Name"])
}

func TestParseErrorNonValidatorError(t *testing.T) {
	t.Parallel()

	fields := ParseError(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"error": "unexpected EOF"}, fields)
}

func TestParseErrorNil(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ParseError(nil))
}
