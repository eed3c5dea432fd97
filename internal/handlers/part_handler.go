package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/movilfix/repairshop-api/internal/audit"
	domain "github.com/movilfix/repairshop-api/internal/domain/part"
	"github.com/movilfix/repairshop-api/internal/httperr"
	"github.com/movilfix/repairshop-api/internal/models"
)

type PartHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPartHandler(repo domain.Repository, audit *audit.Dispatcher) *PartHandler {
	return &PartHandler{repo: repo, audit: audit}
}

// --------- Requests ---------

type StockRequest struct {
	Current *int `json:"current,omitempty"`
	Minimum *int `json:"minimum,omitempty"`
}

type CreatePartRequest struct {
	Name          string                 `json:"name" binding:"required"`
	Description   string                 `json:"description"`
	Type          string                 `json:"type" binding:"required,oneof=Screen Battery Camera Speaker Microphone 'Charging Port' Other"`
	Compatibility []models.Compatibility `json:"compatibility"`
	SKU           string                 `json:"sku" binding:"required"`
	Price         models.PartPrice       `json:"price" binding:"required"`
	Stock         *StockRequest          `json:"stock,omitempty"`
	Supplier      models.Supplier        `json:"supplier"`
	Location      string                 `json:"location"`
	Notes         string                 `json:"notes"`
}

type UpdatePartRequest struct {
	Name          *string                 `json:"name,omitempty"`
	Description   *string                 `json:"description,omitempty"`
	Type          *string                 `json:"type,omitempty" binding:"omitempty,oneof=Screen Battery Camera Speaker Microphone 'Charging Port' Other"`
	Compatibility *[]models.Compatibility `json:"compatibility,omitempty"`
	Price         *models.PartPrice       `json:"price,omitempty"`
	Stock         *models.PartStock       `json:"stock,omitempty"`
	Supplier      *models.Supplier        `json:"supplier,omitempty"`
	Location      *string                 `json:"location,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
}

type AdjustStockRequest struct {
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Type     string `json:"type" binding:"required,oneof=add remove"`
}

// --------- Handlers ---------

func (h *PartHandler) Create(c *gin.Context) {
	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	_, err := h.repo.GetBySKU(c.Request.Context(), req.SKU)
	if err == nil {
		httperr.Conflict(c, "part_already_exists", "Part with this SKU already exists")
		return
	}
	if !errors.Is(err, models.ErrNotFound) {
		httperr.Internal(c, "internal_error", "Unexpected error")
		return
	}

	// Stock defaults: current 0, minimum 1, each applied only when the field
	// is absent from the payload.
	stock := models.PartStock{Current: 0, Minimum: 1}
	if req.Stock != nil {
		if req.Stock.Current != nil {
			stock.Current = *req.Stock.Current
		}
		if req.Stock.Minimum != nil {
			stock.Minimum = *req.Stock.Minimum
		}
	}

	part := models.Part{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		Type:          req.Type,
		Compatibility: req.Compatibility,
		SKU:           req.SKU,
		Price:         req.Price,
		Stock:         stock,
		Supplier:      req.Supplier,
		Location:      req.Location,
		Notes:         req.Notes,
	}

	if err := h.repo.Create(c.Request.Context(), &part); err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			httperr.Conflict(c, "part_already_exists", "Part with this SKU already exists")
			return
		}
		httperr.Internal(c, "failed_to_create_part", "Unexpected error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "part_created",
		Entity:   "part",
		EntityID: part.ID,
	})

	c.JSON(http.StatusCreated, part)
}

func (h *PartHandler) List(c *gin.Context) {
	parts, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_parts", "Unexpected error")
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *PartHandler) Get(c *gin.Context) {
	part, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err, "part")
		return
	}
	c.JSON(http.StatusOK, part)
}

func (h *PartHandler) Update(c *gin.Context) {
	part, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err, "part")
		return
	}

	var req UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		part.Name = *req.Name
	}
	if req.Description != nil {
		part.Description = *req.Description
	}
	if req.Type != nil {
		part.Type = *req.Type
	}
	if req.Compatibility != nil {
		part.Compatibility = *req.Compatibility
	}
	if req.Price != nil {
		part.Price = *req.Price
	}
	if req.Stock != nil {
		part.Stock = *req.Stock
	}
	if req.Supplier != nil {
		part.Supplier = *req.Supplier
	}
	if req.Location != nil {
		part.Location = *req.Location
	}
	if req.Notes != nil {
		part.Notes = *req.Notes
	}

	if err := h.repo.Update(c.Request.Context(), part); err != nil {
		writeDomainError(c, err, "part")
		return
	}

	c.JSON(http.StatusOK, part)
}

func (h *PartHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err, "part")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "part_deleted",
		Entity:   "part",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Part removed"})
}

// AdjustStock applies an add/remove delta through the stock guard; a removal
// larger than current stock is rejected with no mutation.
func (h *PartHandler) AdjustStock(c *gin.Context) {
	part, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err, "part")
		return
	}

	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	current, err := domain.ApplyStockDelta(part.Stock.Current, req.Quantity, req.Type)
	if err != nil {
		writeDomainError(c, err, "part")
		return
	}
	part.Stock.Current = current

	if err := h.repo.Update(c.Request.Context(), part); err != nil {
		writeDomainError(c, err, "part")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "part_stock_adjusted",
		Entity:   "part",
		EntityID: part.ID,
		Metadata: map[string]any{"type": req.Type, "quantity": req.Quantity, "current": current},
	})

	c.JSON(http.StatusOK, part)
}

func (h *PartHandler) Search(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))

	parts, err := h.repo.Search(c.Request.Context(), keyword)
	if err != nil {
		httperr.Internal(c, "failed_to_search_parts", "Unexpected error")
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *PartHandler) LowStock(c *gin.Context) {
	parts, err := h.repo.ListLowStock(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_low_stock", "Unexpected error")
		return
	}
	c.JSON(http.StatusOK, parts)
}
