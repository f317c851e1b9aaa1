package contacts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartzap/server/api/rest/pagination"
	"github.com/smartzap/server/internal/errors"
	"github.com/smartzap/server/smartzap/contacts"
)

// CreateContactHandler creates a new contact
func CreateContactHandler(contactRepo *contacts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contacts.CreateContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.Phone == "" {
			errors.BadRequest(c, "phone is required", nil)
			return
		}

		contact, err := contactRepo.Create(c.Request.Context(), &req)
		if err != nil {
			errors.InternalError(c, "failed to create contact", err)
			return
		}

		c.JSON(http.StatusCreated, contact)
	}
}

// ListContactsHandler lists contacts with pagination
func ListContactsHandler(contactRepo *contacts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, 50, 200)

		list, err := contactRepo.List(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list contacts", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"contacts": list})
	}
}

// GetContactHandler gets a single contact by ID
func GetContactHandler(contactRepo *contacts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		contact, err := contactRepo.GetByID(c.Request.Context(), id)
		if err != nil {
			errors.NotFound(c, "contact")
			return
		}

		c.JSON(http.StatusOK, contact)
	}
}
