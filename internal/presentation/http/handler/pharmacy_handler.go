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

// PharmacyHandler handles pharmacy inventory HTTP requests
type PharmacyHandler struct {
	pharmacyService *service.PharmacyService
}

// NewPharmacyHandler creates a new pharmacy handler
func NewPharmacyHandler(pharmacyService *service.PharmacyService) *PharmacyHandler {
	return &PharmacyHandler{pharmacyService: pharmacyService}
}

// List handles listing medicines
func (h *PharmacyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.MedicineFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		LowStock:   c.Query("low_stock") == "true",
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	result, err := h.pharmacyService.ListMedicines(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Medicines retrieved successfully", result)
}

// Create handles adding a medicine to the inventory
func (h *PharmacyHandler) Create(c *gin.Context) {
	var req struct {
		Code         string     `json:"code"`
		Name         string     `json:"name" binding:"required"`
		GenericName  *string    `json:"generic_name"`
		Manufacturer *string    `json:"manufacturer"`
		Category     string     `json:"category"`
		StockQty     int        `json:"stock_qty"`
		ReorderLevel int        `json:"reorder_level"`
		UnitPrice    float64    `json:"unit_price"`
		ExpiryDate   *time.Time `json:"expiry_date"`
		BatchNumber  *string    `json:"batch_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	medicine, err := h.pharmacyService.CreateMedicine(c.Request.Context(), &service.CreateMedicineInput{
		Code:         req.Code,
		Name:         req.Name,
		GenericName:  req.GenericName,
		Manufacturer: req.Manufacturer,
		Category:     req.Category,
		StockQty:     req.StockQty,
		ReorderLevel: req.ReorderLevel,
		UnitPrice:    req.UnitPrice,
		ExpiryDate:   req.ExpiryDate,
		BatchNumber:  req.BatchNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Medicine created successfully", medicine)
}

// Get handles getting a single medicine
func (h *PharmacyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	medicine, err := h.pharmacyService.GetMedicine(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Medicine retrieved successfully", medicine)
}

// Update handles updating a medicine's descriptive details
func (h *PharmacyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	var req struct {
		Name         *string    `json:"name"`
		GenericName  *string    `json:"generic_name"`
		Manufacturer *string    `json:"manufacturer"`
		Category     *string    `json:"category"`
		ReorderLevel *int       `json:"reorder_level"`
		UnitPrice    *float64   `json:"unit_price"`
		ExpiryDate   *time.Time `json:"expiry_date"`
		BatchNumber  *string    `json:"batch_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	medicine, err := h.pharmacyService.UpdateMedicine(c.Request.Context(), id, &service.UpdateMedicineInput{
		Name:         req.Name,
		GenericName:  req.GenericName,
		Manufacturer: req.Manufacturer,
		Category:     req.Category,
		ReorderLevel: req.ReorderLevel,
		UnitPrice:    req.UnitPrice,
		ExpiryDate:   req.ExpiryDate,
		BatchNumber:  req.BatchNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Medicine updated successfully", medicine)
}

// Delete handles removing a medicine from the inventory
func (h *PharmacyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	if err := h.pharmacyService.DeleteMedicine(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AddStock handles receiving new stock for a medicine
func (h *PharmacyHandler) AddStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	var req struct {
		Quantity    int        `json:"quantity" binding:"required"`
		BatchNumber *string    `json:"batch_number"`
		ExpiryDate  *time.Time `json:"expiry_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	medicine, err := h.pharmacyService.AddStock(c.Request.Context(), id, &service.AddStockInput{
		Quantity:    req.Quantity,
		BatchNumber: req.BatchNumber,
		ExpiryDate:  req.ExpiryDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock added successfully", medicine)
}

// ReduceStock handles dispensing stock. The quantity clamps at zero.
func (h *PharmacyHandler) ReduceStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	medicine, err := h.pharmacyService.ReduceStock(c.Request.Context(), id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock reduced successfully", medicine)
}

// SetStock handles correcting a medicine's stock count
func (h *PharmacyHandler) SetStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	medicine, err := h.pharmacyService.SetStock(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock updated successfully", medicine)
}

// GetLowStock handles listing medicines at or below their reorder level
func (h *PharmacyHandler) GetLowStock(c *gin.Context) {
	medicines, err := h.pharmacyService.GetLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock medicines retrieved successfully", gin.H{
		"medicines": medicines,
	})
}

// GetExpiring handles listing medicines expiring within a window
func (h *PharmacyHandler) GetExpiring(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	medicines, err := h.pharmacyService.GetExpiring(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expiring medicines retrieved successfully", gin.H{
		"medicines": medicines,
	})
}
