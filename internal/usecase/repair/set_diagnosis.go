package repair

import (
	"context"

	"github.com/movilfix/repairshop-api/internal/audit"
	domain "github.com/movilfix/repairshop-api/internal/domain/repair"
	"github.com/movilfix/repairshop-api/internal/models"
)

type SetDiagnosisInput struct {
	ActorID string

	RepairID  string
	Diagnosis models.Diagnosis
}

type SetRepairDiagnosis struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetRepairDiagnosis(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetRepairDiagnosis {
	return &SetRepairDiagnosis{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the diagnosis sub-record wholesale.
func (uc *SetRepairDiagnosis) Execute(
	ctx context.Context,
	in SetDiagnosisInput,
) (*models.Repair, error) {

	rep, err := uc.repo.GetRepair(ctx, in.RepairID)
	if err != nil {
		return nil, err
	}

	rep.Diagnosis = in.Diagnosis

	if err := uc.repo.UpdateRepair(ctx, rep); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "repair_diagnosis_updated",
		Entity:   "repair",
		EntityID: rep.ID,
	})

	return rep, nil
}
