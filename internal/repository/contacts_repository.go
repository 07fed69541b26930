package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"catalog-service/internal/models"
)

type ContactsRepository struct {
	db *gorm.DB
}

func NewContactsRepository(db *gorm.DB) *ContactsRepository {
	return &ContactsRepository{db: db}
}

// CreateContact stores an enquiry. Contacts are append-only.
func (r *ContactsRepository) CreateContact(ctx context.Context, contact *models.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	if contact.EnquiryType == "" {
		contact.EnquiryType = models.EnquiryTypeGeneral
	}
	return r.db.WithContext(ctx).Create(contact).Error
}
