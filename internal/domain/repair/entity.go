package repair

import (
	"time"

	"github.com/movilfix/repairshop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetStatus validates the transition, assigns the status and stamps the
// matching lifecycle date. Stamps overwrite: re-entering a status moves its
// date forward.
func SetStatus(r *models.Repair, to Status, now time.Time) error {
	if err := CanTransition(Status(r.Status), to); err != nil {
		return err
	}

	r.Status = string(to)

	switch to {
	case StatusDiagnosed:
		r.Dates.Diagnosed = &now
	case StatusInProgress:
		r.Dates.Started = &now
	case StatusCompleted:
		r.Dates.Completed = &now
	case StatusDelivered:
		r.Dates.Delivered = &now
	}

	return nil
}

// ApplyParts replaces the whole parts list and recomputes the parts cost and
// the total. Labor is never touched here.
func ApplyParts(r *models.Repair, parts []models.RepairPart) {
	r.Parts = parts

	var partsCost float64
	for _, p := range parts {
		partsCost += float64(p.Quantity) * p.Cost
	}

	r.Cost.Parts = partsCost
	r.Cost.Total = partsCost + r.Cost.Labor
}
