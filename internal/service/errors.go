package service

import (
	"errors"
	"fmt"
)

// Kind separates expected business outcomes from setup defects and storage
// failures. Handlers map kinds and reasons to HTTP statuses; callers never
// inspect error strings.
type Kind int

const (
	// KindValidation is an expected business outcome (bad input, duplicate
	// sale key, unknown phone).
	KindValidation Kind = iota
	// KindConfiguration is a setup defect upstream of the request, such as a
	// company without an earning rule.
	KindConfiguration
	// KindStorage is an unexpected database failure. Awarding requests may be
	// retried safely; the sale-key guard makes retries idempotent.
	KindStorage
)

// Reason is the machine-readable outcome code reported to callers.
type Reason string

const (
	ReasonInvalidPhone         Reason = "invalid_phone"
	ReasonEmptySaleKey         Reason = "empty_sale_key"
	ReasonDuplicateSaleKey     Reason = "sale_key_already_exists"
	ReasonMissingConfiguration Reason = "missing_points_configuration"
	ReasonPhoneNotFound        Reason = "phone_number_does_not_exist"
	ReasonClientAlreadyExists  Reason = "client_already_exists"
	ReasonCompanyNameEmpty     Reason = "company_name_empty"
	ReasonPasswordTooShort     Reason = "password_too_short"
	ReasonPasswordMismatch     Reason = "password_mismatch"
	ReasonEmailEmpty           Reason = "email_empty"
	ReasonEmailInvalid         Reason = "email_invalid"
	ReasonEmailExists          Reason = "email_already_exists"
	ReasonInvalidCredentials   Reason = "invalid_credentials"
	ReasonUserNotActive        Reason = "user_not_active"
	ReasonInvalidActivationKey Reason = "invalid_activation_key"
	ReasonPromotionNotDeleted  Reason = "promotion_not_deleted"
	ReasonInvalidEarningRule   Reason = "invalid_earning_rule"
	ReasonInvalidLogoFile      Reason = "invalid_logo_file"
	ReasonSMSNotSent           Reason = "sms_not_sent"
	ReasonCompanyNotFound      Reason = "company_not_found"
	ReasonCompanyMismatch      Reason = "company_mismatch"
	ReasonCommonError          Reason = "common_error"
)

// Error is the single outcome type services return on failure.
type Error struct {
	Kind    Kind
	Reason  Reason
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(reason Reason, message string) *Error {
	return &Error{Kind: KindValidation, Reason: reason, Message: message}
}

func configurationError(reason Reason, message string) *Error {
	return &Error{Kind: KindConfiguration, Reason: reason, Message: message}
}

func storageError(message string, err error) *Error {
	return &Error{Kind: KindStorage, Reason: ReasonCommonError, Message: message, Err: err}
}

// ReasonOf extracts the outcome code, falling back to common_error for
// untyped failures.
func ReasonOf(err error) Reason {
	var se *Error
	if errors.As(err, &se) {
		return se.Reason
	}
	return ReasonCommonError
}

// KindOf extracts the error kind, treating untyped failures as storage errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindStorage
}

// IsReason reports whether err carries the given outcome code.
func IsReason(err error, reason Reason) bool {
	return ReasonOf(err) == reason
}
