package repair

import (
	"context"

	"github.com/movilfix/repairshop-api/internal/models"
)

type Repository interface {
	// -------- Repair --------
	CreateRepair(
		ctx context.Context,
		r *models.Repair,
	) error

	GetRepair(
		ctx context.Context,
		id string,
	) (*models.Repair, error)

	UpdateRepair(
		ctx context.Context,
		r *models.Repair,
	) error

	ListRepairs(
		ctx context.Context,
	) ([]models.Repair, error)

	ListRepairsByIDs(
		ctx context.Context,
		ids []string,
	) ([]models.Repair, error)

	// -------- Customer back-reference --------
	AppendCustomerRepair(
		ctx context.Context,
		customerID string,
		repairID string,
	) error

	// -------- Reference resolution --------
	CustomersByIDs(
		ctx context.Context,
		ids []string,
	) (map[string]models.Customer, error)

	UsersByIDs(
		ctx context.Context,
		ids []string,
	) (map[string]models.User, error)

	PartsByIDs(
		ctx context.Context,
		ids []string,
	) (map[string]models.Part, error)

	// -------- Inventory --------
	DecrementPartStock(
		ctx context.Context,
		partID string,
		quantity int,
	) error
}
