// Package common defines sentinel errors shared by the storage, service and
// presentation layers of roomsplit. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors. Specific causes are wrapped together with
	// ErrValidation so both can be matched.
	ErrValidation          = errors.New("validation error")
	ErrRoommateRequired    = errors.New("roommate is required")
	ErrUnknownRoommate     = errors.New("unknown roommate")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidAmount       = errors.New("amount is not a number")
	ErrNegativeAmount      = errors.New("amount must not be negative")
	ErrInvalidDate         = errors.New("invalid date")

	// Controller flow errors.
	ErrNotConfirmed     = errors.New("deletion was not confirmed")
	ErrNothingToArchive = errors.New("no expenses to archive")

	// Receipt constraint violations, rejected before any upload.
	ErrReceiptRejected = errors.New("receipt rejected")
	ErrReceiptNotImage = errors.New("receipt must be an image")
	ErrReceiptTooLarge = errors.New("receipt is too large")
	ErrNoReceipt       = errors.New("expense has no receipt")

	// Preference errors.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnsupportedTheme    = errors.New("unsupported theme")
)
