package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/application/service"
	"github.com/kibettheo/medicore-api/internal/domain/repository"
	"github.com/kibettheo/medicore-api/internal/presentation/http/dto/response"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// DoctorHandler handles doctor-related HTTP requests
type DoctorHandler struct {
	doctorService *service.DoctorService
}

// NewDoctorHandler creates a new doctor handler
func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// List handles listing doctors
func (h *DoctorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.DoctorFilterParams{
		Pagination:     &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:         c.Query("search"),
		Specialization: c.Query("specialization"),
		Department:     c.Query("department"),
	}

	result, err := h.doctorService.ListDoctors(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Doctors retrieved successfully", result)
}

// Create handles registering a doctor
func (h *DoctorHandler) Create(c *gin.Context) {
	var req struct {
		LinkedUserID    *uuid.UUID `json:"linked_user_id"`
		FirstName       string     `json:"first_name" binding:"required"`
		LastName        string     `json:"last_name" binding:"required"`
		Specialization  string     `json:"specialization" binding:"required"`
		Department      string     `json:"department"`
		Qualification   *string    `json:"qualification"`
		Phone           *string    `json:"phone"`
		Email           *string    `json:"email"`
		ConsultationFee float64    `json:"consultation_fee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doctor, err := h.doctorService.CreateDoctor(c.Request.Context(), &service.CreateDoctorInput{
		LinkedUserID:    req.LinkedUserID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Specialization:  req.Specialization,
		Department:      req.Department,
		Qualification:   req.Qualification,
		Phone:           req.Phone,
		Email:           req.Email,
		ConsultationFee: req.ConsultationFee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Doctor created successfully", doctor)
}

// Get handles getting a single doctor
func (h *DoctorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.GetDoctor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Doctor retrieved successfully", doctor)
}

// Update handles updating a doctor
func (h *DoctorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}

	var req struct {
		FirstName       *string  `json:"first_name"`
		LastName        *string  `json:"last_name"`
		Specialization  *string  `json:"specialization"`
		Department      *string  `json:"department"`
		Qualification   *string  `json:"qualification"`
		Phone           *string  `json:"phone"`
		Email           *string  `json:"email"`
		ConsultationFee *float64 `json:"consultation_fee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	doctor, err := h.doctorService.UpdateDoctor(c.Request.Context(), id, &service.UpdateDoctorInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Specialization:  req.Specialization,
		Department:      req.Department,
		Qualification:   req.Qualification,
		Phone:           req.Phone,
		Email:           req.Email,
		ConsultationFee: req.ConsultationFee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Doctor updated successfully", doctor)
}

// Delete handles deleting a doctor
func (h *DoctorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid doctor ID")
		return
	}

	if err := h.doctorService.DeleteDoctor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
