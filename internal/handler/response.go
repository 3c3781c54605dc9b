package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "redcross/internal/errors"
	"redcross/internal/repository"
)

// Response is the standard success envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse is the envelope of paginated admin listings.
type ListResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Pages   int         `json:"pages"`
	Data    interface{} `json:"data"`
}

// StatusRequest carries a new moderation status.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func newListResponse(data interface{}, count int, total int64, params repository.ListParams) ListResponse {
	return ListResponse{
		Success: true,
		Count:   count,
		Total:   total,
		Page:    params.Page,
		Pages:   repository.Pages(total, params.Limit),
		Data:    data,
	}
}

// bindAndValidate decodes the body into req, trims it when it knows how and
// runs the struct validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_BODY",
		})
	}
	if t, ok := req.(interface{ trim() }); ok {
		t.trim()
	}
	return c.Validate(req)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Invalid ID format",
			Code:    "INVALID_ID",
		})
	}
	return id, nil
}

func parseListParams(c echo.Context, categoryParam string) repository.ListParams {
	return repository.ListParams{
		Search:   strings.TrimSpace(c.QueryParam("search")),
		Status:   strings.TrimSpace(c.QueryParam("status")),
		Category: strings.TrimSpace(c.QueryParam(categoryParam)),
		SortBy:   c.QueryParam("sortBy"),
		Order:    c.QueryParam("order"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}.Normalize()
}

func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || n < 0 || n > math.MaxInt32 {
		return 0
	}
	return n
}

// errorFor converts a service error into the error envelope. notFound replaces
// the message of ErrNotFound; duplicate replaces the message of ErrDuplicateEmail.
func errorFor(err error, notFound, duplicate string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound) && notFound != "":
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Message: notFound,
			Code:    "NOT_FOUND",
		})
	case errors.Is(err, apperrors.ErrDuplicateEmail) && duplicate != "":
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: duplicate,
			Code:    "DUPLICATE_EMAIL",
			Errors:  []apperrors.FieldError{{Field: "email", Message: "Email already registered"}},
		})
	case errors.Is(err, apperrors.ErrInvalidStatus):
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Message: "Validation failed",
			Code:    "INVALID_STATUS",
			Errors:  []apperrors.FieldError{{Field: "status", Message: "Invalid status"}},
		})
	}
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
