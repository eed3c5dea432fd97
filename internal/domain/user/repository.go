package user

import (
	"context"

	"github.com/movilfix/repairshop-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
