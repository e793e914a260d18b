package dto

// SubmitRequest mirrors the contact form payload. Field presence is checked by
// the usecase so the endpoint can answer with a single missing-fields error
// instead of binding diagnostics.
type SubmitRequest struct {
	Email          string `json:"email"`
	Description    string `json:"description"`
	RecaptchaToken string `json:"recaptchaToken"`
}

type SubmitResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
