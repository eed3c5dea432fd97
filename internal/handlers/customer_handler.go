package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/movilfix/repairshop-api/internal/audit"
	domain "github.com/movilfix/repairshop-api/internal/domain/customer"
	"github.com/movilfix/repairshop-api/internal/dto"
	"github.com/movilfix/repairshop-api/internal/httperr"
	"github.com/movilfix/repairshop-api/internal/models"
)

// RepairViews resolves a customer's repair ids into full read views.
type RepairViews interface {
	ByIDs(ctx context.Context, ids []string) ([]dto.RepairDetail, error)
}

type CustomerHandler struct {
	repo    domain.Repository
	repairs RepairViews
	audit   *audit.Dispatcher
}

func NewCustomerHandler(
	repo domain.Repository,
	repairs RepairViews,
	audit *audit.Dispatcher,
) *CustomerHandler {
	return &CustomerHandler{
		repo:    repo,
		repairs: repairs,
		audit:   audit,
	}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	Name    string         `json:"name" binding:"required"`
	Phone   string         `json:"phone" binding:"required"`
	Email   string         `json:"email" binding:"required,email"`
	Address models.Address `json:"address"`
	Notes   string         `json:"notes"`
}

type UpdateCustomerRequest struct {
	Name    *string         `json:"name,omitempty"`
	Phone   *string         `json:"phone,omitempty"`
	Email   *string         `json:"email,omitempty"`
	Address *models.Address `json:"address,omitempty"`
	Notes   *string         `json:"notes,omitempty"`
}

// --------- Handlers ---------

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := h.repo.GetByEmail(c.Request.Context(), email)
	if err == nil {
		httperr.Conflict(c, "customer_already_exists", "Customer already exists")
		return
	}
	if !errors.Is(err, models.ErrNotFound) {
		httperr.Internal(c, "internal_error", "Unexpected error")
		return
	}

	customer := models.Customer{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   email,
		Address: req.Address,
		Repairs: []string{},
		Notes:   req.Notes,
	}

	if err := h.repo.Create(c.Request.Context(), &customer); err != nil {
		// Unique index backstop for racing creates.
		if errors.Is(err, models.ErrDuplicateKey) {
			httperr.Conflict(c, "customer_already_exists", "Customer already exists")
			return
		}
		httperr.Internal(c, "failed_to_create_customer", "Unexpected error")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: customer.ID,
	})

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_customers", "Unexpected error")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err, "customer")
		return
	}

	repairs, err := h.repairs.ByIDs(c.Request.Context(), customer.Repairs)
	if err != nil {
		httperr.Internal(c, "failed_to_resolve_repairs", "Unexpected error")
		return
	}

	c.JSON(http.StatusOK, dto.CustomerDetail{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Email:     customer.Email,
		Address:   customer.Address,
		Repairs:   repairs,
		Notes:     customer.Notes,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	customer, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err, "customer")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Present-vs-absent patch: only fields in the payload change, and an
	// explicit empty string clears a field.
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := h.repo.Update(c.Request.Context(), customer); err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			httperr.Conflict(c, "customer_already_exists", "Customer already exists")
			return
		}
		writeDomainError(c, err, "customer")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete removes the customer only. Its repairs keep their customer reference;
// orphaned references are documented behavior.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeDomainError(c, err, "customer")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorID(c),
		Action:   "customer_deleted",
		Entity:   "customer",
		EntityID: id,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Customer removed"})
}

func (h *CustomerHandler) Search(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))

	customers, err := h.repo.Search(c.Request.Context(), keyword)
	if err != nil {
		httperr.Internal(c, "failed_to_search_customers", "Unexpected error")
		return
	}
	c.JSON(http.StatusOK, customers)
}
