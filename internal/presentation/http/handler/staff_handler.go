package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/application/service"
	"github.com/kibettheo/medicore-api/internal/presentation/http/dto/response"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// StaffHandler handles staff-related HTTP requests
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// List handles listing staff members
func (h *StaffHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}

	result, err := h.staffService.ListStaff(c.Request.Context(), params, c.Query("search"), c.Query("department"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Staff retrieved successfully", result)
}

// Create handles registering a staff member
func (h *StaffHandler) Create(c *gin.Context) {
	var req struct {
		LinkedUserID *uuid.UUID `json:"linked_user_id"`
		FirstName    string     `json:"first_name" binding:"required"`
		LastName     string     `json:"last_name" binding:"required"`
		Designation  string     `json:"designation" binding:"required"`
		Department   string     `json:"department"`
		Shift        *string    `json:"shift"`
		Phone        *string    `json:"phone"`
		Email        *string    `json:"email"`
		Salary       float64    `json:"salary"`
		JoinedAt     *time.Time `json:"joined_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), &service.CreateStaffInput{
		LinkedUserID: req.LinkedUserID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Designation:  req.Designation,
		Department:   req.Department,
		Shift:        req.Shift,
		Phone:        req.Phone,
		Email:        req.Email,
		Salary:       req.Salary,
		JoinedAt:     req.JoinedAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Staff member created successfully", staff)
}

// Get handles getting a single staff member
func (h *StaffHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	staff, err := h.staffService.GetStaff(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member retrieved successfully", staff)
}

// Update handles updating a staff member
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	var req struct {
		FirstName   *string  `json:"first_name"`
		LastName    *string  `json:"last_name"`
		Designation *string  `json:"designation"`
		Department  *string  `json:"department"`
		Shift       *string  `json:"shift"`
		Phone       *string  `json:"phone"`
		Email       *string  `json:"email"`
		Salary      *float64 `json:"salary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), id, &service.UpdateStaffInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Designation: req.Designation,
		Department:  req.Department,
		Shift:       req.Shift,
		Phone:       req.Phone,
		Email:       req.Email,
		Salary:      req.Salary,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Staff member updated successfully", staff)
}

// Delete handles deleting a staff member
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
