package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-service/internal/events"
	"catalog-service/internal/models"
	"catalog-service/internal/repository"
)

type ContactsHandler struct {
	store     repository.ContactStore
	publisher *events.Publisher
}

func NewContactsHandler(store repository.ContactStore, publisher *events.Publisher) *ContactsHandler {
	return &ContactsHandler{
		store:     store,
		publisher: publisher,
	}
}

// validateBulkEnquiry enforces the stricter field requirements for bulk order
// enquiries. General enquiries only need name, email and message.
func validateBulkEnquiry(req *models.CreateContactRequest) string {
	if req.CompanyName == nil || len(*req.CompanyName) < 2 {
		return "Company name must be at least 2 characters"
	}
	if req.Phone == nil || len(*req.Phone) < 10 {
		return "Phone number must be at least 10 characters"
	}
	if req.ProductInterest == nil || *req.ProductInterest == "" {
		return "Please specify your product interest"
	}
	if req.Quantity == nil || *req.Quantity == "" {
		return "Please specify required quantity"
	}
	return ""
}

// CreateContact stores a contact/enquiry submission
// POST /api/contacts
func (h *ContactsHandler) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "VALIDATION_ERROR",
				Message: "Invalid contact data",
			},
		})
		return
	}

	enquiryType := models.EnquiryTypeGeneral
	if req.EnquiryType == string(models.EnquiryTypeBulk) {
		enquiryType = models.EnquiryTypeBulk
		if msg := validateBulkEnquiry(&req); msg != "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Error: models.Error{
					Code:    "VALIDATION_ERROR",
					Message: msg,
				},
			})
			return
		}
	}

	contact := models.Contact{
		Name:            req.Name,
		Email:           req.Email,
		Message:         req.Message,
		CompanyName:     req.CompanyName,
		Phone:           req.Phone,
		ProductInterest: req.ProductInterest,
		Quantity:        req.Quantity,
		EnquiryType:     enquiryType,
	}

	if err := h.store.CreateContact(c.Request.Context(), &contact); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "STORE_ERROR",
				Message: "Failed to send contact message",
			},
		})
		return
	}

	h.publisher.PublishContactCreated(contact.ID.String(), string(contact.EnquiryType))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact message sent successfully",
		"contact": contact,
	})
}
