package repair

import (
	"context"

	domain "github.com/movilfix/repairshop-api/internal/domain/repair"
	"github.com/movilfix/repairshop-api/internal/dto"
)

type GetRepair struct {
	repo     domain.Repository
	resolver *Resolver
}

func NewGetRepair(repo domain.Repository, resolver *Resolver) *GetRepair {
	return &GetRepair{repo: repo, resolver: resolver}
}

func (uc *GetRepair) Execute(
	ctx context.Context,
	id string,
) (*dto.RepairDetail, error) {

	rep, err := uc.repo.GetRepair(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.resolver.ResolveOne(ctx, rep)
}
