package repair

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/movilfix/repairshop-api/internal/audit"
	"github.com/movilfix/repairshop-api/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateRepair(ctx context.Context, r *models.Repair) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRepository) GetRepair(ctx context.Context, id string) (*models.Repair, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Repair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) UpdateRepair(ctx context.Context, r *models.Repair) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRepository) ListRepairs(ctx context.Context) ([]models.Repair, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Repair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListRepairsByIDs(ctx context.Context, ids []string) ([]models.Repair, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.([]models.Repair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) AppendCustomerRepair(ctx context.Context, customerID, repairID string) error {
	return m.Called(ctx, customerID, repairID).Error(0)
}

func (m *MockRepository) CustomersByIDs(ctx context.Context, ids []string) (map[string]models.Customer, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.(map[string]models.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) UsersByIDs(ctx context.Context, ids []string) (map[string]models.User, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.(map[string]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) PartsByIDs(ctx context.Context, ids []string) (map[string]models.Part, error) {
	args := m.Called(ctx, ids)
	if v := args.Get(0); v != nil {
		return v.(map[string]models.Part), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) DecrementPartStock(ctx context.Context, partID string, quantity int) error {
	return m.Called(ctx, partID, quantity).Error(0)
}

type nopAuditStore struct{}

func (nopAuditStore) SaveAuditLog(context.Context, *models.AuditLog) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nopAuditStore{}))
}
