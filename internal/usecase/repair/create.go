package repair

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/movilfix/repairshop-api/internal/audit"
	domain "github.com/movilfix/repairshop-api/internal/domain/repair"
	"github.com/movilfix/repairshop-api/internal/httperr"
	"github.com/movilfix/repairshop-api/internal/logger"
	"github.com/movilfix/repairshop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateRepairInput struct {
	ActorID string

	CustomerID   string
	Device       models.Device
	Issue        models.Issue
	TechnicianID string
	Notes        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateRepair struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateRepair(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateRepair {
	return &CreateRepair{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateRepair) Execute(
	ctx context.Context,
	in CreateRepairInput,
) (*models.Repair, error) {

	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	now := time.Now()

	rep := &models.Repair{
		ID:           uuid.NewString(),
		CustomerID:   in.CustomerID,
		Device:       in.Device,
		Issue:        in.Issue,
		Status:       string(domain.StatusPending),
		TechnicianID: in.TechnicianID,
		Parts:        []models.RepairPart{},
		Dates:        models.RepairDates{Received: now},
		Notes:        in.Notes,
	}

	if err := uc.repo.CreateRepair(ctx, rep); err != nil {
		return nil, err
	}

	// Second, independent write. The repair already exists; a failure here
	// leaves it unlinked from its customer and is only logged.
	if err := uc.repo.AppendCustomerRepair(ctx, in.CustomerID, rep.ID); err != nil {
		logger.L().Warn("repair created but customer link failed",
			logger.String("repair_id", rep.ID),
			logger.String("customer_id", in.CustomerID),
			logger.ErrorF(err),
		)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "repair_created",
		Entity:   "repair",
		EntityID: rep.ID,
	})

	return rep, nil
}

func validateCreateInput(in CreateRepairInput) error {
	switch {
	case in.CustomerID == "",
		in.TechnicianID == "",
		in.Device.Brand == "",
		in.Device.Model == "",
		in.Device.Condition == "",
		in.Issue.Description == "",
		in.Issue.Type == "":
		return httperr.ErrBusiness(httperr.CodeInvalidRepairData)
	}

	if !models.IsPartType(in.Issue.Type) && in.Issue.Type != "Software" {
		return httperr.ErrBusiness(httperr.CodeInvalidRepairData)
	}
	return nil
}
