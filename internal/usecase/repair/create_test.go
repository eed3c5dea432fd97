package repair

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/movilfix/repairshop-api/internal/domain/repair"
	"github.com/movilfix/repairshop-api/internal/httperr"
	"github.com/movilfix/repairshop-api/internal/models"
)

func validCreateInput() CreateRepairInput {
	return CreateRepairInput{
		ActorID:    gofakeit.UUID(),
		CustomerID: gofakeit.UUID(),
		Device: models.Device{
			Brand:     "Apple",
			Model:     "iPhone 13",
			Condition: "Cracked glass, powers on",
		},
		Issue: models.Issue{
			Description: gofakeit.Sentence(5),
			Type:        "Screen",
		},
		TechnicianID: gofakeit.UUID(),
	}
}

func TestCreateRepair(t *testing.T) {
	t.Parallel()

	t.Run("creates pending repair and links customer", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewCreateRepair(repo, newTestDispatcher())
		in := validCreateInput()

		repo.On("CreateRepair", mock.Anything, mock.MatchedBy(func(r *models.Repair) bool {
			return r.ID != "" &&
				r.Status == string(domain.StatusPending) &&
				r.CustomerID == in.CustomerID &&
				!r.Dates.Received.IsZero() &&
				len(r.Parts) == 0
		})).Return(nil).Once()
		repo.On("AppendCustomerRepair", mock.Anything, in.CustomerID, mock.Anything).
			Return(nil).Once()

		rep, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		require.NotNil(t, rep)
		assert.Equal(t, string(domain.StatusPending), rep.Status)
		assert.Nil(t, rep.Dates.Diagnosed)

		repo.AssertExpectations(t)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewCreateRepair(repo, newTestDispatcher())

		in := validCreateInput()
		in.Device.Condition = ""

		rep, err := uc.Execute(context.Background(), in)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRepairData))
		assert.Nil(t, rep)

		repo.AssertNotCalled(t, "CreateRepair", mock.Anything, mock.Anything)
	})

	t.Run("unknown issue type", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewCreateRepair(repo, newTestDispatcher())

		in := validCreateInput()
		in.Issue.Type = "Antenna"

		_, err := uc.Execute(context.Background(), in)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRepairData))
	})

	t.Run("software issue type is accepted", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewCreateRepair(repo, newTestDispatcher())

		in := validCreateInput()
		in.Issue.Type = "Software"

		repo.On("CreateRepair", mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("AppendCustomerRepair", mock.Anything, in.CustomerID, mock.Anything).
			Return(nil).Once()

		_, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("customer link failure is best-effort", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewCreateRepair(repo, newTestDispatcher())
		in := validCreateInput()

		repo.On("CreateRepair", mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("AppendCustomerRepair", mock.Anything, in.CustomerID, mock.Anything).
			Return(models.ErrNotFound).Once()

		// The repair write already succeeded; the missing back-reference is
		// logged, not surfaced.
		rep, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		require.NotNil(t, rep)

		repo.AssertExpectations(t)
	})

	t.Run("repair write failure surfaces", func(t *testing.T) {
		t.Parallel()

		repo := &MockRepository{}
		uc := NewCreateRepair(repo, newTestDispatcher())

		repo.On("CreateRepair", mock.Anything, mock.Anything).
			Return(errors.New("write failed")).Once()

		_, err := uc.Execute(context.Background(), validCreateInput())
		require.Error(t, err)

		repo.AssertNotCalled(t, "AppendCustomerRepair", mock.Anything, mock.Anything, mock.Anything)
	})
}
