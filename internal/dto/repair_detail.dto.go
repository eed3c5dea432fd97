package dto

import (
	"time"

	"github.com/movilfix/repairshop-api/internal/models"
)

// Read-side views with references resolved: the customer summary, the
// technician name and the full part document per line item take the place of
// the stored ids.

type CustomerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type TechnicianSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RepairPartDetail struct {
	Part     *models.Part `json:"part"`
	Quantity int          `json:"quantity"`
	Cost     float64      `json:"cost"`
}

type RepairDetail struct {
	ID         string             `json:"id"`
	Customer   *CustomerSummary   `json:"customer"`
	Device     models.Device      `json:"device"`
	Issue      models.Issue       `json:"issue"`
	Status     string             `json:"status"`
	Technician *TechnicianSummary `json:"technician"`
	Diagnosis  models.Diagnosis   `json:"diagnosis"`
	Parts      []RepairPartDetail `json:"parts"`
	Cost       models.RepairCost  `json:"cost"`
	Dates      models.RepairDates `json:"dates"`
	Notes      string             `json:"notes,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}
