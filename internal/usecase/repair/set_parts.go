package repair

import (
	"context"

	"github.com/samber/lo"

	"github.com/movilfix/repairshop-api/internal/audit"
	domainpart "github.com/movilfix/repairshop-api/internal/domain/part"
	domain "github.com/movilfix/repairshop-api/internal/domain/repair"
	"github.com/movilfix/repairshop-api/internal/logger"
	"github.com/movilfix/repairshop-api/internal/models"
)

type SetPartsInput struct {
	ActorID string

	RepairID string
	Parts    []models.RepairPart
}

type SetRepairParts struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetRepairParts(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetRepairParts {
	return &SetRepairParts{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the repair's parts list, recomputes costs and decrements
// inventory. Every requested quantity is checked against current stock
// through the shared guard before any write happens; the decrements
// themselves remain independent single-document updates with no rollback.
func (uc *SetRepairParts) Execute(
	ctx context.Context,
	in SetPartsInput,
) (*models.Repair, error) {

	rep, err := uc.repo.GetRepair(ctx, in.RepairID)
	if err != nil {
		return nil, err
	}

	// Total quantity per referenced part; the same part may appear on more
	// than one line.
	required := make(map[string]int, len(in.Parts))
	for _, item := range in.Parts {
		required[item.PartID] += item.Quantity
	}

	ids := lo.Uniq(lo.Map(in.Parts, func(item models.RepairPart, _ int) string {
		return item.PartID
	}))

	stocked, err := uc.repo.PartsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for id, qty := range required {
		p, ok := stocked[id]
		if !ok {
			logger.L().Warn("repair references unknown part",
				logger.String("repair_id", rep.ID),
				logger.String("part_id", id),
			)
			continue
		}
		if _, err := domainpart.ApplyStockDelta(p.Stock.Current, qty, domainpart.DirectionRemove); err != nil {
			return nil, err
		}
	}

	domain.ApplyParts(rep, in.Parts)

	if err := uc.repo.UpdateRepair(ctx, rep); err != nil {
		return nil, err
	}

	for id, qty := range required {
		if _, ok := stocked[id]; !ok {
			continue
		}
		if err := uc.repo.DecrementPartStock(ctx, id, qty); err != nil {
			logger.L().Error("stock decrement failed after parts assignment",
				logger.String("repair_id", rep.ID),
				logger.String("part_id", id),
				logger.Int("quantity", qty),
				logger.ErrorF(err),
			)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "repair_parts_assigned",
		Entity:   "repair",
		EntityID: rep.ID,
		Metadata: map[string]any{"parts": len(in.Parts), "cost": rep.Cost.Parts},
	})

	return rep, nil
}
