package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/movilfix/repairshop-api/internal/httperr"
	"github.com/movilfix/repairshop-api/internal/models"
	ucrepair "github.com/movilfix/repairshop-api/internal/usecase/repair"
)

// ======================================================
// HANDLER
// ======================================================

type RepairHandler struct {
	create       *ucrepair.CreateRepair
	setStatus    *ucrepair.SetRepairStatus
	setParts     *ucrepair.SetRepairParts
	setDiagnosis *ucrepair.SetRepairDiagnosis
	get          *ucrepair.GetRepair
	list         *ucrepair.ListRepairs
}

func NewRepairHandler(
	create *ucrepair.CreateRepair,
	setStatus *ucrepair.SetRepairStatus,
	setParts *ucrepair.SetRepairParts,
	setDiagnosis *ucrepair.SetRepairDiagnosis,
	get *ucrepair.GetRepair,
	list *ucrepair.ListRepairs,
) *RepairHandler {
	return &RepairHandler{
		create:       create,
		setStatus:    setStatus,
		setParts:     setParts,
		setDiagnosis: setDiagnosis,
		get:          get,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type DeviceRequest struct {
	Brand        string `json:"brand" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serialNumber"`
	Condition    string `json:"condition" binding:"required"`
}

type IssueRequest struct {
	Description string `json:"description" binding:"required"`
	Type        string `json:"type" binding:"required"`
}

type CreateRepairRequest struct {
	CustomerID   string        `json:"customerId" binding:"required"`
	Device       DeviceRequest `json:"device" binding:"required"`
	Issue        IssueRequest  `json:"issue" binding:"required"`
	TechnicianID string        `json:"technicianId" binding:"required"`
	Notes        string        `json:"notes"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RepairPartRequest struct {
	Part     string  `json:"part" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Cost     float64 `json:"cost" binding:"gte=0"`
}

type SetPartsRequest struct {
	Parts []RepairPartRequest `json:"parts" binding:"required"`
}

type DiagnosisRequest struct {
	Notes         string  `json:"notes"`
	EstimatedCost float64 `json:"estimatedCost" binding:"gte=0"`
	EstimatedTime string  `json:"estimatedTime"`
}

type SetDiagnosisRequest struct {
	Diagnosis DiagnosisRequest `json:"diagnosis" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *RepairHandler) Create(c *gin.Context) {
	var req CreateRepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_repair_data", "Invalid repair data")
		return
	}

	rep, err := h.create.Execute(c.Request.Context(), ucrepair.CreateRepairInput{
		ActorID:    actorID(c),
		CustomerID: req.CustomerID,
		Device: models.Device{
			Brand:        req.Device.Brand,
			Model:        req.Device.Model,
			SerialNumber: req.Device.SerialNumber,
			Condition:    req.Device.Condition,
		},
		Issue: models.Issue{
			Description: req.Issue.Description,
			Type:        req.Issue.Type,
		},
		TechnicianID: req.TechnicianID,
		Notes:        req.Notes,
	})
	if err != nil {
		writeDomainError(c, err, "repair")
		return
	}

	c.JSON(http.StatusCreated, rep)
}

func (h *RepairHandler) List(c *gin.Context) {
	repairs, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_repairs", "Unexpected error")
		return
	}
	c.JSON(http.StatusOK, repairs)
}

func (h *RepairHandler) Get(c *gin.Context) {
	rep, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err, "repair")
		return
	}
	c.JSON(http.StatusOK, rep)
}

func (h *RepairHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rep, err := h.setStatus.Execute(c.Request.Context(), ucrepair.SetStatusInput{
		ActorID:  actorID(c),
		RepairID: c.Param("id"),
		Status:   req.Status,
	})
	if err != nil {
		writeDomainError(c, err, "repair")
		return
	}

	c.JSON(http.StatusOK, rep)
}

func (h *RepairHandler) SetParts(c *gin.Context) {
	var req SetPartsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	parts := make([]models.RepairPart, 0, len(req.Parts))
	for _, item := range req.Parts {
		parts = append(parts, models.RepairPart{
			PartID:   item.Part,
			Quantity: item.Quantity,
			Cost:     item.Cost,
		})
	}

	rep, err := h.setParts.Execute(c.Request.Context(), ucrepair.SetPartsInput{
		ActorID:  actorID(c),
		RepairID: c.Param("id"),
		Parts:    parts,
	})
	if err != nil {
		writeDomainError(c, err, "repair")
		return
	}

	c.JSON(http.StatusOK, rep)
}

func (h *RepairHandler) SetDiagnosis(c *gin.Context) {
	var req SetDiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rep, err := h.setDiagnosis.Execute(c.Request.Context(), ucrepair.SetDiagnosisInput{
		ActorID:  actorID(c),
		RepairID: c.Param("id"),
		Diagnosis: models.Diagnosis{
			Notes:         req.Diagnosis.Notes,
			EstimatedCost: req.Diagnosis.EstimatedCost,
			EstimatedTime: req.Diagnosis.EstimatedTime,
		},
	})
	if err != nil {
		writeDomainError(c, err, "repair")
		return
	}

	c.JSON(http.StatusOK, rep)
}
