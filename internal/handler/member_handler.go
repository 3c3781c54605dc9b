package handler

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"redcross/internal/model"
	"redcross/internal/service"
)

const (
	memberNotFound  = "Member not found"
	memberDuplicate = "You have already registered as a member with this email"
	receiptFailed   = "Receipt generation failed, but application was successful"
)

// MemberHandler handles membership endpoints.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// MemberRequest represents a membership application form.
type MemberRequest struct {
	FullName       string   `json:"fullName" validate:"required,max=255"`
	Email          string   `json:"email" validate:"required,email,max=255"`
	Phone          string   `json:"phone" validate:"required,max=32"`
	Address        string   `json:"address" validate:"required,max=5000"`
	Occupation     string   `json:"occupation" validate:"max=255"`
	MembershipType string   `json:"membershipType" validate:"omitempty,oneof=individual family corporate"`
	Interests      []string `json:"interests"`
	Message        string   `json:"message" validate:"max=5000"`
}

func (r *MemberRequest) trim() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.Occupation = strings.TrimSpace(r.Occupation)
	r.MembershipType = strings.ToLower(strings.TrimSpace(r.MembershipType))
}

// MemberCreated is the data returned after an application.
type MemberCreated struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	MembershipType string `json:"membershipType"`
	PDFReceipt     string `json:"pdfReceipt,omitempty"`
}

// MemberCreatedResponse adds the receipt failure notice to the envelope.
type MemberCreatedResponse struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Data     MemberCreated `json:"data"`
	PDFError string        `json:"pdfError,omitempty"`
}

// Create godoc
// @Summary Apply for membership
// @Description Stores the application and returns the receipt PDF as base64.
// @Tags members
// @Accept json
// @Produce json
// @Param request body MemberRequest true "Membership application"
// @Success 201 {object} MemberCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	var req MemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.memberService.Register(c.Request().Context(), service.MemberInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		Occupation:     req.Occupation,
		MembershipType: req.MembershipType,
		Interests:      req.Interests,
		Message:        req.Message,
	})
	if err != nil {
		return errorFor(err, "", memberDuplicate)
	}

	member := result.Member
	resp := MemberCreatedResponse{
		Success: true,
		Data: MemberCreated{
			ID:             member.ID.String(),
			FullName:       member.FullName,
			Email:          member.Email,
			MembershipType: string(member.MembershipType),
		},
	}
	if result.ReceiptErr != nil || result.Receipt == nil {
		resp.Message = "Membership application submitted successfully! We will contact you soon."
		resp.PDFError = receiptFailed
	} else {
		resp.Message = "Membership application submitted successfully! Download your receipt below."
		resp.Data.PDFReceipt = base64.StdEncoding.EncodeToString(result.Receipt.PDF)
	}
	return c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List membership applications
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches name, email or phone"
// @Param status query string false "Status filter"
// @Param membershipType query string false "Membership type filter"
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param order query string false "asc or desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} ListResponse{data=[]model.Member}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /members [get]
func (h *MemberHandler) List(c echo.Context) error {
	params := parseListParams(c, "membershipType")
	members, total, err := h.memberService.List(c.Request().Context(), params)
	if err != nil {
		return errorFor(err, "", "")
	}
	return c.JSON(http.StatusOK, newListResponse(members, len(members), total, params))
}

// Get godoc
// @Summary Get a membership application
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} Response{data=model.Member}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	member, err := h.memberService.Get(c.Request().Context(), id)
	if err != nil {
		return errorFor(err, memberNotFound, "")
	}
	return c.JSON(http.StatusOK, Response{Success: true, Data: member})
}

// UpdateStatus godoc
// @Summary Change the status of a membership
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param request body StatusRequest true "pending, approved, active or expired"
// @Success 200 {object} Response{data=model.Member}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{id}/status [patch]
func (h *MemberHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	member, err := h.memberService.UpdateStatus(c.Request().Context(), id, model.MemberStatus(req.Status))
	if err != nil {
		return errorFor(err, memberNotFound, "")
	}
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: "Status updated successfully",
		Data:    member,
	})
}

// Delete godoc
// @Summary Delete a membership
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.memberService.Delete(c.Request().Context(), id); err != nil {
		return errorFor(err, memberNotFound, "")
	}
	return c.JSON(http.StatusOK, Response{Success: true, Message: "Member deleted successfully"})
}

// DownloadReceipt godoc
// @Summary Download the membership receipt
// @Tags members
// @Produce application/pdf
// @Param id path string true "Member ID"
// @Success 200 {file} binary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /members/{id}/receipt [get]
func (h *MemberHandler) DownloadReceipt(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	rec, err := h.memberService.Receipt(c.Request().Context(), id)
	if err != nil {
		return errorFor(err, memberNotFound, "")
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "membership-receipt-"+id.String()+".pdf"))
	header.Set(echo.HeaderContentLength, strconv.Itoa(len(rec.PDF)))
	return c.Blob(http.StatusOK, "application/pdf", rec.PDF)
}
