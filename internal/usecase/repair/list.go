package repair

import (
	"context"

	domain "github.com/movilfix/repairshop-api/internal/domain/repair"
	"github.com/movilfix/repairshop-api/internal/dto"
)

type ListRepairs struct {
	repo     domain.Repository
	resolver *Resolver
}

func NewListRepairs(repo domain.Repository, resolver *Resolver) *ListRepairs {
	return &ListRepairs{repo: repo, resolver: resolver}
}

func (uc *ListRepairs) Execute(ctx context.Context) ([]dto.RepairDetail, error) {
	reps, err := uc.repo.ListRepairs(ctx)
	if err != nil {
		return nil, err
	}
	return uc.resolver.ResolveAll(ctx, reps)
}
