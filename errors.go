package hxform

import "errors"

// Sentinel errors for form hydration and state decoding.
var (
	// ErrUnprocessable is returned when a form fails validation under a
	// policy that demands strictness at that point: always in early mode,
	// and in late mode once the user has explicitly submitted. The hosting
	// layer is expected to translate it into a 422 response.
	ErrUnprocessable = errors.New("hxform: form validation failed in component")

	ErrDecryptFailed    = errors.New("hxform: state decryption failed")
	ErrSignatureInvalid = errors.New("hxform: state signature verification failed")
	ErrInvalidFormat    = errors.New("hxform: invalid state format")
)

// IsUnprocessable checks if err is a validation-strictness failure.
func IsUnprocessable(err error) bool {
	return errors.Is(err, ErrUnprocessable)
}

// IsStateError checks if err means the incoming state blob could not be
// decoded (tampered, truncated, or encrypted with a different key).
func IsStateError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrInvalidFormat)
}
