package repair

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/movilfix/repairshop-api/internal/httperr"
	"github.com/movilfix/repairshop-api/internal/models"
)

func TestSetRepairParts(t *testing.T) {
	t.Parallel()

	repairID := "rep-1"

	storedRepair := func() *models.Repair {
		return &models.Repair{
			ID:     repairID,
			Status: "Diagnosed",
			Cost:   models.RepairCost{Labor: 40},
		}
	}

	t.Run("replaces list, recomputes cost and decrements stock", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewSetRepairParts(repo, newTestDispatcher())

		repo.On("GetRepair", mock.Anything, repairID).Return(storedRepair(), nil).Once()
		repo.On("PartsByIDs", mock.Anything, []string{"s1", "s2"}).Return(map[string]models.Part{
			"s1": {ID: "s1", Stock: models.PartStock{Current: 5}},
			"s2": {ID: "s2", Stock: models.PartStock{Current: 3}},
		}, nil).Once()
		repo.On("UpdateRepair", mock.Anything, mock.MatchedBy(func(r *models.Repair) bool {
			return r.Cost.Parts == 35 && r.Cost.Total == 75 && len(r.Parts) == 2
		})).Return(nil).Once()
		repo.On("DecrementPartStock", mock.Anything, "s1", 2).Return(nil).Once()
		repo.On("DecrementPartStock", mock.Anything, "s2", 1).Return(nil).Once()

		rep, err := uc.Execute(context.Background(), SetPartsInput{
			RepairID: repairID,
			Parts: []models.RepairPart{
				{PartID: "s1", Quantity: 2, Cost: 10},
				{PartID: "s2", Quantity: 1, Cost: 15},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 35.0, rep.Cost.Parts)
		assert.Equal(t, 75.0, rep.Cost.Total)
		assert.Equal(t, 40.0, rep.Cost.Labor)

		repo.AssertExpectations(t)
	})

	t.Run("insufficient stock rejects before any write", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewSetRepairParts(repo, newTestDispatcher())

		repo.On("GetRepair", mock.Anything, repairID).Return(storedRepair(), nil).Once()
		repo.On("PartsByIDs", mock.Anything, []string{"s1"}).Return(map[string]models.Part{
			"s1": {ID: "s1", Stock: models.PartStock{Current: 2}},
		}, nil).Once()

		_, err := uc.Execute(context.Background(), SetPartsInput{
			RepairID: repairID,
			Parts:    []models.RepairPart{{PartID: "s1", Quantity: 5, Cost: 10}},
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInsufficientStock))

		repo.AssertNotCalled(t, "UpdateRepair", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "DecrementPartStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("quantities for the same part accumulate against stock", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewSetRepairParts(repo, newTestDispatcher())

		// 3 + 2 lines of the same part against 4 in stock must fail even
		// though each line alone would pass.
		repo.On("GetRepair", mock.Anything, repairID).Return(storedRepair(), nil).Once()
		repo.On("PartsByIDs", mock.Anything, []string{"s1"}).Return(map[string]models.Part{
			"s1": {ID: "s1", Stock: models.PartStock{Current: 4}},
		}, nil).Once()

		_, err := uc.Execute(context.Background(), SetPartsInput{
			RepairID: repairID,
			Parts: []models.RepairPart{
				{PartID: "s1", Quantity: 3, Cost: 10},
				{PartID: "s1", Quantity: 2, Cost: 10},
			},
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInsufficientStock))
	})

	t.Run("unknown part reference skips the decrement", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewSetRepairParts(repo, newTestDispatcher())

		repo.On("GetRepair", mock.Anything, repairID).Return(storedRepair(), nil).Once()
		repo.On("PartsByIDs", mock.Anything, []string{"ghost"}).
			Return(map[string]models.Part{}, nil).Once()
		repo.On("UpdateRepair", mock.Anything, mock.Anything).Return(nil).Once()

		rep, err := uc.Execute(context.Background(), SetPartsInput{
			RepairID: repairID,
			Parts:    []models.RepairPart{{PartID: "ghost", Quantity: 1, Cost: 9}},
		})
		require.NoError(t, err)
		assert.Equal(t, 9.0, rep.Cost.Parts)

		repo.AssertNotCalled(t, "DecrementPartStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing repair", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewSetRepairParts(repo, newTestDispatcher())

		repo.On("GetRepair", mock.Anything, "nope").Return(nil, models.ErrNotFound).Once()

		_, err := uc.Execute(context.Background(), SetPartsInput{RepairID: "nope"})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
