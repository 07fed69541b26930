package models

import (
	"time"

	"github.com/google/uuid"
)

// EnquiryType distinguishes general contact messages from bulk order enquiries.
type EnquiryType string

const (
	EnquiryTypeGeneral EnquiryType = "general"
	EnquiryTypeBulk    EnquiryType = "bulk"
)

// Contact represents a contact/enquiry form submission. Records are created
// once and never mutated or deleted by this service.
type Contact struct {
	ID              uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name            string      `json:"name" gorm:"not null"`
	Email           string      `json:"email" gorm:"not null"`
	Message         string      `json:"message" gorm:"not null"`
	CompanyName     *string     `json:"companyName,omitempty"`
	Phone           *string     `json:"phone,omitempty"`
	ProductInterest *string     `json:"productInterest,omitempty"`
	Quantity        *string     `json:"quantity,omitempty"`
	EnquiryType     EnquiryType `json:"enquiryType" gorm:"default:'general'"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// CreateContactRequest is the POST /api/contacts body.
type CreateContactRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Message         string  `json:"message" binding:"required"`
	CompanyName     *string `json:"companyName"`
	Phone           *string `json:"phone"`
	ProductInterest *string `json:"productInterest"`
	Quantity        *string `json:"quantity"`
	EnquiryType     string  `json:"enquiryType"`
}
