package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kibettheo/medicore-api/internal/application/service"
	"github.com/kibettheo/medicore-api/internal/domain/enum"
	"github.com/kibettheo/medicore-api/internal/domain/repository"
	"github.com/kibettheo/medicore-api/internal/presentation/http/dto/response"
	"github.com/kibettheo/medicore-api/pkg/pagination"
)

// WardHandler handles ward and bed allocation HTTP requests
type WardHandler struct {
	wardService *service.WardService
}

// NewWardHandler creates a new ward handler
func NewWardHandler(wardService *service.WardService) *WardHandler {
	return &WardHandler{wardService: wardService}
}

// List handles listing wards
func (h *WardHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.WardFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		Department: c.Query("department"),
	}
	if typeStr := c.Query("type"); typeStr != "" {
		wardType := enum.WardType(typeStr)
		params.Type = &wardType
	}
	if floorStr := c.Query("floor"); floorStr != "" {
		if floor, err := strconv.Atoi(floorStr); err == nil {
			params.Floor = &floor
		}
	}

	result, err := h.wardService.ListWards(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Wards retrieved successfully", result)
}

// Create handles creating a ward with its beds
func (h *WardHandler) Create(c *gin.Context) {
	var req struct {
		Name              string  `json:"name" binding:"required"`
		Type              string  `json:"type" binding:"required"`
		Department        string  `json:"department"`
		Floor             int     `json:"floor"`
		TotalBeds         int     `json:"total_beds" binding:"required"`
		DailyRate         float64 `json:"daily_rate"`
		GenderRestriction string  `json:"gender_restriction"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ward, err := h.wardService.CreateWard(c.Request.Context(), &service.CreateWardInput{
		Name:              req.Name,
		Type:              req.Type,
		Department:        req.Department,
		Floor:             req.Floor,
		TotalBeds:         req.TotalBeds,
		DailyRate:         req.DailyRate,
		GenderRestriction: req.GenderRestriction,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ward created successfully", ward)
}

// Get handles getting a single ward with its beds
func (h *WardHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ward ID")
		return
	}

	ward, err := h.wardService.GetWard(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ward retrieved successfully", ward)
}

// Update handles updating a ward
func (h *WardHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ward ID")
		return
	}

	var req struct {
		Name              *string  `json:"name"`
		Type              *string  `json:"type"`
		Department        *string  `json:"department"`
		Floor             *int     `json:"floor"`
		DailyRate         *float64 `json:"daily_rate"`
		GenderRestriction *string  `json:"gender_restriction"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ward, err := h.wardService.UpdateWard(c.Request.Context(), id, &service.UpdateWardInput{
		Name:              req.Name,
		Type:              req.Type,
		Department:        req.Department,
		Floor:             req.Floor,
		DailyRate:         req.DailyRate,
		GenderRestriction: req.GenderRestriction,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ward updated successfully", ward)
}

// Delete handles deleting a ward
func (h *WardHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ward ID")
		return
	}

	if err := h.wardService.DeleteWard(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AllocateBed handles admitting a patient into a ward
func (h *WardHandler) AllocateBed(c *gin.Context) {
	wardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ward ID")
		return
	}

	var req struct {
		PatientID             uuid.UUID  `json:"patient_id" binding:"required"`
		AdmissionDate         time.Time  `json:"admission_date" binding:"required"`
		ExpectedDischargeDate *time.Time `json:"expected_discharge_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bed, err := h.wardService.AllocateBed(c.Request.Context(), &service.AllocateBedInput{
		WardID:                wardID,
		PatientID:             req.PatientID,
		AdmissionDate:         req.AdmissionDate,
		ExpectedDischargeDate: req.ExpectedDischargeDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bed allocated successfully", bed)
}

// ReleaseBed handles discharging a patient from a bed
func (h *WardHandler) ReleaseBed(c *gin.Context) {
	wardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ward ID")
		return
	}

	bedNumber, err := strconv.Atoi(c.Param("bed_number"))
	if err != nil {
		response.BadRequest(c, "Invalid bed number")
		return
	}

	bed, err := h.wardService.ReleaseBed(c.Request.Context(), wardID, bedNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bed released successfully", bed)
}
