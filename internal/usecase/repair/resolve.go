package repair

import (
	"context"

	"github.com/samber/lo"

	domain "github.com/movilfix/repairshop-api/internal/domain/repair"
	"github.com/movilfix/repairshop-api/internal/dto"
	"github.com/movilfix/repairshop-api/internal/models"
)

// Resolver turns stored repairs into read views with their customer,
// technician and part references resolved. References that no longer exist
// (a deleted customer, say) come back nil rather than failing the read.
type Resolver struct {
	repo domain.Repository
}

func NewResolver(repo domain.Repository) *Resolver {
	return &Resolver{repo: repo}
}

func (rv *Resolver) ResolveOne(
	ctx context.Context,
	rep *models.Repair,
) (*dto.RepairDetail, error) {

	details, err := rv.ResolveAll(ctx, []models.Repair{*rep})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (rv *Resolver) ResolveAll(
	ctx context.Context,
	reps []models.Repair,
) ([]dto.RepairDetail, error) {

	customerIDs := lo.Uniq(lo.Map(reps, func(r models.Repair, _ int) string {
		return r.CustomerID
	}))
	technicianIDs := lo.Uniq(lo.Map(reps, func(r models.Repair, _ int) string {
		return r.TechnicianID
	}))

	partIDs := make([]string, 0)
	for _, r := range reps {
		for _, item := range r.Parts {
			partIDs = append(partIDs, item.PartID)
		}
	}
	partIDs = lo.Uniq(partIDs)

	customers, err := rv.repo.CustomersByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	technicians, err := rv.repo.UsersByIDs(ctx, technicianIDs)
	if err != nil {
		return nil, err
	}
	parts, err := rv.repo.PartsByIDs(ctx, partIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RepairDetail, 0, len(reps))
	for _, r := range reps {
		out = append(out, buildDetail(r, customers, technicians, parts))
	}
	return out, nil
}

// ByIDs loads and resolves a specific set of repairs, preserving the order of
// ids (a customer's repairs list is ordered).
func (rv *Resolver) ByIDs(
	ctx context.Context,
	ids []string,
) ([]dto.RepairDetail, error) {

	reps, err := rv.repo.ListRepairsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := lo.KeyBy(reps, func(r models.Repair) string { return r.ID })
	ordered := make([]models.Repair, 0, len(reps))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}

	return rv.ResolveAll(ctx, ordered)
}

func buildDetail(
	r models.Repair,
	customers map[string]models.Customer,
	technicians map[string]models.User,
	parts map[string]models.Part,
) dto.RepairDetail {

	detail := dto.RepairDetail{
		ID:        r.ID,
		Device:    r.Device,
		Issue:     r.Issue,
		Status:    r.Status,
		Diagnosis: r.Diagnosis,
		Parts:     make([]dto.RepairPartDetail, 0, len(r.Parts)),
		Cost:      r.Cost,
		Dates:     r.Dates,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	if c, ok := customers[r.CustomerID]; ok {
		detail.Customer = &dto.CustomerSummary{
			ID:    c.ID,
			Name:  c.Name,
			Phone: c.Phone,
			Email: c.Email,
		}
	}
	if t, ok := technicians[r.TechnicianID]; ok {
		detail.Technician = &dto.TechnicianSummary{
			ID:   t.ID,
			Name: t.Name,
		}
	}

	for _, item := range r.Parts {
		pd := dto.RepairPartDetail{
			Quantity: item.Quantity,
			Cost:     item.Cost,
		}
		if p, ok := parts[item.PartID]; ok {
			pd.Part = &p
		}
		detail.Parts = append(detail.Parts, pd)
	}

	return detail
}
