package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"portfolio-backend/internal/contact/domain"
	"portfolio-backend/internal/contact/repository"
	"portfolio-backend/pkg/recaptcha"
)

// Verifier checks an anti-bot token with the reCAPTCHA provider. A returned
// error means the provider could not be reached, which is distinct from a
// Result with Passed=false (the provider answered and said no).
type Verifier interface {
	Verify(ctx context.Context, token string) (*recaptcha.Result, error)
}

// Notifier delivers the inquiry summary email. Failures are logged and never
// affect the submission outcome.
type Notifier interface {
	SendContactNotification(ctx context.Context, email, message string, submittedAt time.Time) error
}

// ContactUsecase runs the submission pipeline: validate, verify, persist,
// notify. Persistence alone decides success.
type ContactUsecase interface {
	Submit(ctx context.Context, email, message, token string) (*domain.Inquiry, error)

	// WaitForNotifications blocks until all in-flight notification dispatches
	// finish. Used for graceful shutdown and by tests.
	WaitForNotifications()
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type contactUsecase struct {
	verifier       Verifier // nil when no reCAPTCHA secret is configured
	inquiryRepo    repository.InquiryRepository
	notifier       Notifier // nil when no email provider is configured
	scoreThreshold float64

	notifyWG      sync.WaitGroup
	notifyTimeout time.Duration
}

func NewContactUsecase(verifier Verifier, inquiryRepo repository.InquiryRepository, notifier Notifier, scoreThreshold float64) ContactUsecase {
	return &contactUsecase{
		verifier:       verifier,
		inquiryRepo:    inquiryRepo,
		notifier:       notifier,
		scoreThreshold: scoreThreshold,
		notifyTimeout:  30 * time.Second,
	}
}

func (u *contactUsecase) Submit(ctx context.Context, email, message, token string) (*domain.Inquiry, error) {
	submittedAt := time.Now()

	// Validate
	if email == "" || message == "" || token == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrMissingFields
	}

	// Verify. A nil verifier means no secret is configured; submissions pass
	// through unverified rather than being rejected.
	var score *float64
	if u.verifier == nil {
		log.Println("[Contact] reCAPTCHA secret not configured, skipping verification")
	} else {
		result, err := u.verifier.Verify(ctx, token)
		if err != nil {
			// Fail closed: an unreachable provider rejects the submission.
			log.Printf("[Contact] reCAPTCHA provider unreachable: %v", err)
			return nil, &VerificationError{}
		}
		if !result.Passed {
			u.logVerificationFailure(result)
			return nil, &VerificationError{ErrorCodes: result.ErrorCodes}
		}
		if result.Score != nil && *result.Score < u.scoreThreshold {
			log.Printf("[Contact] reCAPTCHA score too low: %.2f", *result.Score)
			return nil, &VerificationError{Suspicious: true}
		}
		score = result.Score
	}

	// Persist. This is the sole determinant of success; the write is not tied
	// to the request context so a client disconnect cannot abort it.
	if u.inquiryRepo == nil {
		log.Println("[Contact] inquiry repository not configured, cannot save submission")
		return nil, ErrStorageUnavailable
	}

	inquiry := &domain.Inquiry{
		Email:             email,
		Message:           message,
		VerificationScore: score,
		SubmittedAt:       submittedAt,
	}
	if err := u.inquiryRepo.Create(inquiry); err != nil {
		log.Printf("[Contact] failed to save inquiry: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}

	// Notify, best-effort and detached: email provider latency or outages must
	// not delay or change the response.
	if u.notifier != nil {
		u.notifyWG.Add(1)
		go u.dispatchNotification(inquiry)
	}

	log.Printf("[Contact] inquiry %s saved (from %s)", inquiry.ID, inquiry.Email)
	return inquiry, nil
}

// dispatchNotification sends the summary email with its own timeout and a
// single retry. Runs outside the request lifecycle.
func (u *contactUsecase) dispatchNotification(inquiry *domain.Inquiry) {
	defer u.notifyWG.Done()

	ctx, cancel := context.WithTimeout(context.Background(), u.notifyTimeout)
	defer cancel()

	err := u.notifier.SendContactNotification(ctx, inquiry.Email, inquiry.Message, inquiry.SubmittedAt)
	if err == nil {
		log.Printf("[Contact] notification sent for inquiry %s", inquiry.ID)
		return
	}
	log.Printf("[Contact] notification failed for inquiry %s, retrying once: %v", inquiry.ID, err)

	if err := u.notifier.SendContactNotification(ctx, inquiry.Email, inquiry.Message, inquiry.SubmittedAt); err != nil {
		log.Printf("[Contact] notification retry failed for inquiry %s: %v", inquiry.ID, err)
	}
}

func (u *contactUsecase) WaitForNotifications() {
	u.notifyWG.Wait()
}

// logVerificationFailure mirrors the provider's error codes into the log with
// hints for the usual misconfigurations.
func (u *contactUsecase) logVerificationFailure(result *recaptcha.Result) {
	log.Printf("[Contact] reCAPTCHA verification failed: codes=%v hostname=%s challenge_ts=%s",
		result.ErrorCodes, result.Hostname, result.ChallengeTS)
	for _, code := range result.ErrorCodes {
		switch code {
		case "browser-error":
			log.Println("[Contact] browser-error usually means the token was not generated correctly on the client")
		case "invalid-input-response":
			log.Println("[Contact] the token was malformed or expired")
		case "invalid-input-secret":
			log.Println("[Contact] check the RECAPTCHA_SECRET_KEY environment variable")
		}
	}
}
