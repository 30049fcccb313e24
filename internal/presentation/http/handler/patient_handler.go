package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/application/service"
	"github.com/kibettheo/medicore-api/internal/domain/repository"
	"github.com/kibettheo/medicore-api/internal/presentation/http/dto/response"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// PatientHandler handles patient-related HTTP requests
type PatientHandler struct {
	patientService *service.PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// List handles listing patients
func (h *PatientHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.PatientFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		Gender:     c.Query("gender"),
		BloodGroup: c.Query("blood_group"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	result, err := h.patientService.ListPatients(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Patients retrieved successfully", result)
}

// Create handles registering a patient
func (h *PatientHandler) Create(c *gin.Context) {
	var req struct {
		LinkedUserID     *uuid.UUID `json:"linked_user_id"`
		FirstName        string     `json:"first_name" binding:"required"`
		LastName         string     `json:"last_name" binding:"required"`
		Gender           string     `json:"gender" binding:"required"`
		DateOfBirth      *time.Time `json:"date_of_birth"`
		BloodGroup       *string    `json:"blood_group"`
		Phone            *string    `json:"phone"`
		Email            *string    `json:"email"`
		Address          *string    `json:"address"`
		EmergencyContact *string    `json:"emergency_contact"`
		EmergencyPhone   *string    `json:"emergency_phone"`
		MedicalHistory   *string    `json:"medical_history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	patient, err := h.patientService.CreatePatient(c.Request.Context(), &service.CreatePatientInput{
		LinkedUserID:     req.LinkedUserID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Gender:           req.Gender,
		DateOfBirth:      req.DateOfBirth,
		BloodGroup:       req.BloodGroup,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		MedicalHistory:   req.MedicalHistory,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Patient registered successfully", patient)
}

// Get handles getting a single patient
func (h *PatientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetPatient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Patient retrieved successfully", patient)
}

// Update handles updating a patient
func (h *PatientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	var req struct {
		LinkedUserID     *uuid.UUID `json:"linked_user_id"`
		FirstName        *string    `json:"first_name"`
		LastName         *string    `json:"last_name"`
		Gender           *string    `json:"gender"`
		DateOfBirth      *time.Time `json:"date_of_birth"`
		BloodGroup       *string    `json:"blood_group"`
		Phone            *string    `json:"phone"`
		Email            *string    `json:"email"`
		Address          *string    `json:"address"`
		EmergencyContact *string    `json:"emergency_contact"`
		EmergencyPhone   *string    `json:"emergency_phone"`
		MedicalHistory   *string    `json:"medical_history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	patient, err := h.patientService.UpdatePatient(c.Request.Context(), id, &service.UpdatePatientInput{
		LinkedUserID:     req.LinkedUserID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Gender:           req.Gender,
		DateOfBirth:      req.DateOfBirth,
		BloodGroup:       req.BloodGroup,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		MedicalHistory:   req.MedicalHistory,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Patient updated successfully", patient)
}

// Delete handles deleting a patient
func (h *PatientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid patient ID")
		return
	}

	if err := h.patientService.DeletePatient(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
