package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"redcross/internal/model"
	"redcross/internal/service"
)

const (
	volunteerNotFound  = "Volunteer not found"
	volunteerDuplicate = "You have already registered as a volunteer with this email"
)

// VolunteerHandler handles volunteer endpoints.
type VolunteerHandler struct {
	volunteerService service.VolunteerService
}

// NewVolunteerHandler creates a new volunteer handler.
func NewVolunteerHandler(volunteerService service.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{volunteerService: volunteerService}
}

// VolunteerRequest represents a volunteer registration form.
type VolunteerRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	Email          string   `json:"email" validate:"required,email,max=255"`
	Phone          string   `json:"phone" validate:"required,max=32"`
	AreaOfInterest string   `json:"areaOfInterest" validate:"required,max=100"`
	Availability   string   `json:"availability" validate:"max=100"`
	Experience     string   `json:"experience" validate:"max=5000"`
	Skills         []string `json:"skills"`
	Message        string   `json:"message" validate:"max=5000"`
}

func (r *VolunteerRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.AreaOfInterest = strings.TrimSpace(r.AreaOfInterest)
	r.Availability = strings.TrimSpace(r.Availability)
}

// VolunteerCreated is the data returned after a registration.
type VolunteerCreated struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	AreaOfInterest string `json:"areaOfInterest"`
}

// Create godoc
// @Summary Register as a volunteer
// @Tags volunteers
// @Accept json
// @Produce json
// @Param request body VolunteerRequest true "Volunteer application"
// @Success 201 {object} Response{data=VolunteerCreated}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /volunteers [post]
func (h *VolunteerHandler) Create(c echo.Context) error {
	var req VolunteerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	volunteer, err := h.volunteerService.Register(c.Request().Context(), service.VolunteerInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		AreaOfInterest: req.AreaOfInterest,
		Availability:   req.Availability,
		Experience:     req.Experience,
		Skills:         req.Skills,
		Message:        req.Message,
	})
	if err != nil {
		return errorFor(err, "", volunteerDuplicate)
	}

	return c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: "Volunteer registration successful! We will contact you soon.",
		Data: VolunteerCreated{
			ID:             volunteer.ID.String(),
			Name:           volunteer.Name,
			Email:          volunteer.Email,
			AreaOfInterest: volunteer.AreaOfInterest,
		},
	})
}

// List godoc
// @Summary List volunteer applications
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name, email or phone"
// @Param status query string false "Status filter"
// @Param areaOfInterest query string false "Area of interest filter"
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param order query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} ListResponse{data=[]model.Volunteer}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /volunteers [get]
func (h *VolunteerHandler) List(c echo.Context) error {
	params := parseListParams(c, "areaOfInterest")
	volunteers, total, err := h.volunteerService.List(c.Request().Context(), params)
	if err != nil {
		return errorFor(err, "", "")
	}
	return c.JSON(http.StatusOK, newListResponse(volunteers, len(volunteers), total, params))
}

// Get godoc
// @Summary Get a volunteer application
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Volunteer ID"
// @Success 200 {object} Response{data=model.Volunteer}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /volunteers/{id} [get]
func (h *VolunteerHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	volunteer, err := h.volunteerService.Get(c.Request().Context(), id)
	if err != nil {
		return errorFor(err, volunteerNotFound, "")
	}
	return c.JSON(http.StatusOK, Response{Success: true, Data: volunteer})
}

// UpdateStatus godoc
// @Summary Change the status of a volunteer application
// @Tags volunteers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Volunteer ID"
// @Param request body StatusRequest true "pending, approved, rejected or active"
// @Success 200 {object} Response{data=model.Volunteer}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /volunteers/{id}/status [patch]
func (h *VolunteerHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	volunteer, err := h.volunteerService.UpdateStatus(c.Request().Context(), id, model.VolunteerStatus(req.Status))
	if err != nil {
		return errorFor(err, volunteerNotFound, "")
	}
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Status updated successfully",
		Data:    volunteer,
	})
}

// Delete godoc
// @Summary Delete a volunteer application
// @Tags volunteers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Volunteer ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /volunteers/{id} [delete]
func (h *VolunteerHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.volunteerService.Delete(c.Request().Context(), id); err != nil {
		return errorFor(err, volunteerNotFound, "")
	}
	return c.JSON(http.StatusOK, Response{Success: true, Message: "Volunteer deleted successfully"})
}
