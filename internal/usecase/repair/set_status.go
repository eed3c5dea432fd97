package repair

import (
	"context"
	"time"

	"github.com/movilfix/repairshop-api/internal/audit"
	domain "github.com/movilfix/repairshop-api/internal/domain/repair"
	"github.com/movilfix/repairshop-api/internal/models"
)

type SetStatusInput struct {
	ActorID string

	RepairID string
	Status   string
}

type SetRepairStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetRepairStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetRepairStatus {
	return &SetRepairStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetRepairStatus) Execute(
	ctx context.Context,
	in SetStatusInput,
) (*models.Repair, error) {

	rep, err := uc.repo.GetRepair(ctx, in.RepairID)
	if err != nil {
		return nil, err
	}

	previous := rep.Status

	if err := domain.SetStatus(rep, domain.Status(in.Status), time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRepair(ctx, rep); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "repair_status_changed",
		Entity:   "repair",
		EntityID: rep.ID,
		Metadata: map[string]string{"from": previous, "to": rep.Status},
	})

	return rep, nil
}
