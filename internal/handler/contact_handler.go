package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"redcross/internal/model"
	"redcross/internal/service"
)

const contactNotFound = "Contact not found"

// ContactHandler handles contact form endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact form message.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"max=32"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *ContactRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// ContactCreated is the data returned after a message is stored.
type ContactCreated struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

// Create godoc
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact message"
// @Success 201 {object} Response{data=ContactCreated}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.contactService.Submit(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return errorFor(err, "", "")
	}

	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Your message has been received. We will get back to you soon!",
		Data: ContactCreated{
			ID:      contact.ID.String(),
			Name:    contact.Name,
			Email:   contact.Email,
			Subject: contact.Subject,
		},
	})
}

// List godoc
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name, email or subject"
// @Param status query string false "new, in-progress or resolved"
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param order query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} ListResponse{data=[]model.Contact}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	params := parseListParams(c, "")
	contacts, total, err := h.contactService.List(c.Request().Context(), params)
	if err != nil {
		return errorFor(err, "", "")
	}
	return c.JSON(http.StatusOK, newListResponse(contacts, len(contacts), total, params))
}

// Get godoc
// @Summary Get a contact message
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} Response{data=model.Contact}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	contact, err := h.contactService.Get(c.Request().Context(), id)
	if err != nil {
		return errorFor(err, contactNotFound, "")
	}
	return c.JSON(http.StatusOK, Response{Success: true, Data: contact})
}

// UpdateStatus godoc
// @Summary Change the status of a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param request body StatusRequest true "new, in-progress or resolved"
// @Success 200 {object} Response{data=model.Contact}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact/{id}/status [patch]
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.contactService.UpdateStatus(c.Request().Context(), id, model.ContactStatus(req.Status))
	if err != nil {
		return errorFor(err, contactNotFound, "")
	}
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Status updated successfully",
		Data:    contact,
	})
}
