package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/internal/contact/domain"
)

// gormInquiryRepository implements InquiryRepository using GORM
type gormInquiryRepository struct {
	db *gorm.DB
}

// NewGormInquiryRepository creates a new GORM-based InquiryRepository
func NewGormInquiryRepository(db *gorm.DB) InquiryRepository {
	return &gormInquiryRepository{db: db}
}

func (r *gormInquiryRepository) Create(inquiry *domain.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}
	inquiry.CreatedAt = time.Now()
	return r.db.Create(inquiry).Error
}

func (r *gormInquiryRepository) FindByID(id string) (*domain.Inquiry, error) {
	var inquiry domain.Inquiry
	err := r.db.Where("id = ?", id).First(&inquiry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *gormInquiryRepository) FindAll(limit, offset int) ([]*domain.Inquiry, int64, error) {
	var inquiries []*domain.Inquiry
	var total int64

	query := r.db.Model(&domain.Inquiry{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("submitted_at DESC").Limit(limit).Offset(offset).Find(&inquiries).Error
	return inquiries, total, err
}
