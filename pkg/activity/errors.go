package activity

import (
	"go.temporal.io/sdk/temporal"
)

// Application error types surfaced to workflows and clients.
const (
	// ErrTypeValidation marks malformed activity or workflow input.
	ErrTypeValidation = "Validation"

	// ErrTypeInvalidScore marks a score the grader rejects.
	ErrTypeInvalidScore = "InvalidScore"
)

// NonRetryable wraps cause as a Temporal non-retryable application error.
// Retrying a validation or business rule failure cannot change the outcome.
func NonRetryable(errType string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, errType, cause)
}
