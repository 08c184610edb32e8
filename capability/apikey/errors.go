package apikey

import (
	"errors"
	"fmt"
)

// ProviderPanicMessage is the panic value Render uses when the owning provider
// no longer exists.
const ProviderPanicMessage = "An error occurred while working with the provider."

// Sentinel errors returned by OnProvided.
// TooShortError matches ErrTooShort through errors.Is.
var (
	// ErrEmpty is returned when the candidate key is empty.
	ErrEmpty = errors.New("api key is empty")

	// ErrTooShort is returned when the candidate key is below the minimum length.
	ErrTooShort = errors.New("api key is too short")

	// ErrProvider is returned when the owning provider no longer exists.
	ErrProvider = errors.New("provider is no longer available")
)

// TooShortError carries the minimum length the candidate failed to meet.
type TooShortError struct {
	MinLen int
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("api key is too short: must be at least %d characters", e.MinLen)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, apikey.ErrTooShort)
func (e *TooShortError) Is(target error) bool {
	return target == ErrTooShort
}
