package dto

import (
	"time"

	"github.com/movilfix/repairshop-api/internal/models"
)

type CustomerDetail struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	Address   models.Address `json:"address"`
	Repairs   []RepairDetail `json:"repairs"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
