package repository

import "portfolio-backend/internal/contact/domain"

// InquiryRepository persists contact form submissions. Create is the only write
// path; inquiries are immutable once stored.
type InquiryRepository interface {
	Create(inquiry *domain.Inquiry) error
	FindByID(id string) (*domain.Inquiry, error)
	FindAll(limit, offset int) ([]*domain.Inquiry, int64, error)
}
