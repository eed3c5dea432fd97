package customer

import (
	"context"

	"github.com/movilfix/repairshop-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context) ([]models.Customer, error)
	Search(ctx context.Context, keyword string) ([]models.Customer, error)
}
