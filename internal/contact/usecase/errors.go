package usecase

import "errors"

var (
	// ErrMissingFields is the single client-input error: one or more of email,
	// description, recaptchaToken is absent or empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrStorageUnavailable means no persistence backend was configured at all.
	ErrStorageUnavailable = errors.New("inquiry storage is not configured")

	// ErrStorageWriteFailed wraps a failed write against a configured backend.
	ErrStorageWriteFailed = errors.New("failed to save inquiry")
)

// VerificationError carries the provider's diagnostics for a rejected token.
// Suspicious marks the low-score variant (provider said success but the human
// likelihood score fell below the threshold).
type VerificationError struct {
	Suspicious bool
	ErrorCodes []string
}

func (e *VerificationError) Error() string {
	if e.Suspicious {
		return "recaptcha verification failed: suspicious activity"
	}
	return "recaptcha verification failed"
}
