package handlers

import (
	"context"

	"github.com/movilfix/repairshop-api/internal/audit"
	"github.com/movilfix/repairshop-api/internal/dto"
	"github.com/movilfix/repairshop-api/internal/models"
)

type fakeCustomerRepo struct {
	createFn     func(ctx context.Context, c *models.Customer) error
	getByIDFn    func(ctx context.Context, id string) (*models.Customer, error)
	getByEmailFn func(ctx context.Context, email string) (*models.Customer, error)
	updateFn     func(ctx context.Context, c *models.Customer) error
	deleteFn     func(ctx context.Context, id string) error
	listFn       func(ctx context.Context) ([]models.Customer, error)
	searchFn     func(ctx context.Context, keyword string) ([]models.Customer, error)
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	return f.createFn(ctx, c)
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *models.Customer) error {
	return f.updateFn(ctx, c)
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeCustomerRepo) List(ctx context.Context) ([]models.Customer, error) {
	return f.listFn(ctx)
}

func (f *fakeCustomerRepo) Search(ctx context.Context, keyword string) ([]models.Customer, error) {
	return f.searchFn(ctx, keyword)
}

type fakePartRepo struct {
	createFn   func(ctx context.Context, p *models.Part) error
	getByIDFn  func(ctx context.Context, id string) (*models.Part, error)
	getBySKUFn func(ctx context.Context, sku string) (*models.Part, error)
	updateFn   func(ctx context.Context, p *models.Part) error
	deleteFn   func(ctx context.Context, id string) error
	listFn     func(ctx context.Context) ([]models.Part, error)
	searchFn   func(ctx context.Context, keyword string) ([]models.Part, error)
	lowStockFn func(ctx context.Context) ([]models.Part, error)
}

func (f *fakePartRepo) Create(ctx context.Context, p *models.Part) error { return f.createFn(ctx, p) }

func (f *fakePartRepo) GetByID(ctx context.Context, id string) (*models.Part, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePartRepo) GetBySKU(ctx context.Context, sku string) (*models.Part, error) {
	return f.getBySKUFn(ctx, sku)
}

func (f *fakePartRepo) Update(ctx context.Context, p *models.Part) error { return f.updateFn(ctx, p) }

func (f *fakePartRepo) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

func (f *fakePartRepo) List(ctx context.Context) ([]models.Part, error) { return f.listFn(ctx) }

func (f *fakePartRepo) Search(ctx context.Context, keyword string) ([]models.Part, error) {
	return f.searchFn(ctx, keyword)
}

func (f *fakePartRepo) ListLowStock(ctx context.Context) ([]models.Part, error) {
	return f.lowStockFn(ctx)
}

type fakeRepairViews struct {
	byIDsFn func(ctx context.Context, ids []string) ([]dto.RepairDetail, error)
}

func (f *fakeRepairViews) ByIDs(ctx context.Context, ids []string) ([]dto.RepairDetail, error) {
	return f.byIDsFn(ctx, ids)
}

type nopAuditStore struct{}

func (nopAuditStore) SaveAuditLog(context.Context, *models.AuditLog) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nopAuditStore{}))
}
