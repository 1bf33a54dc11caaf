package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	v := NewValidator("US")

	assert.NoError(t, v.Validate("+12025550123"))
	assert.NoError(t, v.Validate("2025550123"))

	assert.ErrorIs(t, v.Validate(""), ErrInvalidPhone)
	assert.ErrorIs(t, v.Validate("   "), ErrInvalidPhone)
	assert.ErrorIs(t, v.Validate("12345"), ErrInvalidPhone)
	assert.ErrorIs(t, v.Validate("not-a-phone"), ErrInvalidPhone)
}

func TestValidate_DefaultRegion(t *testing.T) {
	// Fully qualified numbers validate regardless of the default region.
	v := NewValidator("MX")
	assert.NoError(t, v.Validate("+12025550123"))
	assert.NoError(t, v.Validate("+525512345678"))
}
