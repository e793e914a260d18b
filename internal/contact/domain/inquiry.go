package domain

import "time"

// Inquiry is a contact form submission. Rows are written once and never updated;
// the message body is stored exactly as submitted, with no escaping.
type Inquiry struct {
	ID                string    `json:"id" gorm:"primaryKey"`
	Email             string    `json:"email" gorm:"index;not null"`
	Message           string    `json:"message" gorm:"type:text;not null"`
	VerificationScore *float64  `json:"verification_score,omitempty"` // nil when reCAPTCHA is unconfigured or returned no score
	SubmittedAt       time.Time `json:"submitted_at" gorm:"not null"`
	CreatedAt         time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Inquiry) TableName() string {
	return "inquiries"
}
