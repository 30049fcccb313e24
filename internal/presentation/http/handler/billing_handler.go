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

// BillingHandler handles billing-related HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// List handles listing bills
func (h *BillingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
		Search:     c.Query("search"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}
	if patientIDStr := c.Query("patient_id"); patientIDStr != "" {
		if patientID, err := uuid.Parse(patientIDStr); err == nil {
			params.PatientID = &patientID
		}
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if status, ok := enum.ParsePaymentStatus(statusStr); ok {
			params.Status = &status
		}
	}
	if startStr := c.Query("start_date"); startStr != "" {
		if start, err := time.Parse("2006-01-02", startStr); err == nil {
			params.StartDate = &start
		}
	}
	if endStr := c.Query("end_date"); endStr != "" {
		if end, err := time.Parse("2006-01-02", endStr); err == nil {
			params.EndDate = &end
		}
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Create handles creating a bill with its line items
func (h *BillingHandler) Create(c *gin.Context) {
	var req struct {
		PatientID uuid.UUID  `json:"patient_id" binding:"required"`
		BillDate  *time.Time `json:"bill_date"`
		Discount  float64    `json:"discount"`
		Tax       float64    `json:"tax"`
		Notes     *string    `json:"notes"`
		Items     []struct {
			Description string  `json:"description" binding:"required"`
			Category    string  `json:"category"`
			Quantity    int     `json:"quantity" binding:"required"`
			UnitPrice   float64 `json:"unit_price"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.BillItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.BillItemInput{
			Description: item.Description,
			Category:    item.Category,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		PatientID: req.PatientID,
		BillDate:  req.BillDate,
		Discount:  req.Discount,
		Tax:       req.Tax,
		Notes:     req.Notes,
		Items:     items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Get handles getting a single bill with items, payments and claim
func (h *BillingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Delete handles deleting a bill. Bills with recorded payments cannot be removed.
func (h *BillingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billingService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// RecordPayment handles appending a payment to a bill's ledger
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req struct {
		Amount        float64 `json:"amount" binding:"required"`
		Method        string  `json:"method" binding:"required"`
		TransactionID *string `json:"transaction_id"`
		Notes         *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billingService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		BillID:        billID,
		Amount:        req.Amount,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", bill)
}

// AttachClaim handles submitting an insurance claim for a bill
func (h *BillingHandler) AttachClaim(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req struct {
		ClaimNumber   string  `json:"claim_number" binding:"required"`
		Provider      string  `json:"provider" binding:"required"`
		AmountClaimed float64 `json:"amount_claimed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billingService.AttachClaim(c.Request.Context(), &service.AttachClaimInput{
		BillID:        billID,
		ClaimNumber:   req.ClaimNumber,
		Provider:      req.Provider,
		AmountClaimed: req.AmountClaimed,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Insurance claim submitted successfully", bill)
}

// UpdateClaimStatus handles moving a bill's insurance claim through its lifecycle
func (h *BillingHandler) UpdateClaimStatus(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billingService.UpdateClaimStatus(c.Request.Context(), billID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Claim status updated successfully", bill)
}
