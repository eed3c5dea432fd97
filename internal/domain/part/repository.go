package part

import (
	"context"

	"github.com/movilfix/repairshop-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Part) error
	GetByID(ctx context.Context, id string) (*models.Part, error)
	GetBySKU(ctx context.Context, sku string) (*models.Part, error)
	Update(ctx context.Context, p *models.Part) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context) ([]models.Part, error)
	Search(ctx context.Context, keyword string) ([]models.Part, error)
	ListLowStock(ctx context.Context) ([]models.Part, error)
}
