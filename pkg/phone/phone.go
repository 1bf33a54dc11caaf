package phone

import (
	"errors"
	"strings"

	"github.com/ttacon/libphonenumber"
)

var ErrInvalidPhone = errors.New("invalid phone number")

// Validator checks phone numbers before they reach the ledger. Pure, no side
// effects.
type Validator interface {
	Validate(number string) error
}

type libphoneValidator struct {
	defaultRegion string
}

// NewValidator returns a libphonenumber-backed validator. defaultRegion is
// used for numbers submitted without a country prefix.
func NewValidator(defaultRegion string) Validator {
	if defaultRegion == "" {
		defaultRegion = "US"
	}
	return &libphoneValidator{defaultRegion: defaultRegion}
}

func (v *libphoneValidator) Validate(number string) error {
	if strings.TrimSpace(number) == "" {
		return ErrInvalidPhone
	}
	parsed, err := libphonenumber.Parse(number, v.defaultRegion)
	if err != nil {
		return ErrInvalidPhone
	}
	if !libphonenumber.IsValidNumber(parsed) {
		return ErrInvalidPhone
	}
	return nil
}
