package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Jesus1025/ventas-api/internal/application/service"
	"github.com/Jesus1025/ventas-api/internal/domain/enum"
	"github.com/Jesus1025/ventas-api/internal/presentation/http/dto/request"
	"github.com/Jesus1025/ventas-api/internal/presentation/http/dto/response"
)

// SaleHandler handles sale ledger HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing the full sales ledger
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales retrieved successfully", sales)
}

// Create handles registering a sale
func (h *SaleHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		DocumentType: enum.DocumentType(req.DocumentType),
		BusinessType: enum.BusinessType(req.BusinessType),
		Description:  req.Description,
		GrossAmount:  decimal.NewFromFloat(req.GrossAmount),
		CreatedBy:    userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", sale)
}

// Delete handles deleting a sale by id. An unknown id is a successful no-op.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid sale id")
		return
	}

	if err := h.saleService.DeleteSale(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale deleted successfully", nil)
}
