package expense_test

import (
	"context"
	"errors"
	"testing"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/expense"
	mock_expense "fuelstation-backend/internal/expense/mocks"
	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"
	"fuelstation-backend/internal/store"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manager = audit.Actor{UserID: 1, UserName: "Grace"}

// inTx makes Transaction run its callback against the same mock.
func inTx(ctx context.Context, repo *mock_expense.MockRepository) {
	repo.EXPECT().Transaction(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, fn func(expense.Repository) error) error {
		return fn(repo)
	})
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a pending expense", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		repo.EXPECT().GetShiftData(ctx, uint(5)).Return(models.ShiftData{ID: 5, ShiftID: 2}, nil)
		repo.EXPECT().GetShift(ctx, uint(2)).Return(models.Shift{ID: 2, BranchID: 3}, nil)
		inTx(ctx, repo)
		repo.EXPECT().CreateExpense(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *models.Expense) error {
			e.ID = 50
			return nil
		})
		repo.EXPECT().AppendAudit(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entry models.AuditLog) error {
			require.NotNil(t, entry.BranchID)
			assert.Equal(t, uint(3), *entry.BranchID)
			assert.Equal(t, uint(50), entry.EntityID)
			return nil
		})

		e, err := svc.Submit(ctx, expense.SubmitInput{ShiftDataID: 5, Description: " generator diesel ", Amount: 2500}, manager)
		require.NoError(t, err)
		assert.Equal(t, models.ExpensePending, e.Status)
		assert.Equal(t, "generator diesel", e.Description)
	})

	t.Run("rejects a non-positive amount without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := expense.NewService(mock_expense.NewMockRepository(ctrl))

		_, err := svc.Submit(ctx, expense.SubmitInput{ShiftDataID: 5, Description: "x", Amount: 0}, manager)
		assert.True(t, reconcile.IsValidation(err))
	})

	t.Run("unknown shift data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_expense.NewMockRepository(ctrl)
		svc := expense.NewService(repo)

		repo.EXPECT().GetShiftData(ctx, uint(404)).Return(models.ShiftData{}, store.ErrNotFound)
		_, err := svc.Submit(ctx, expense.SubmitInput{ShiftDataID: 404, Description: "x", Amount: 1}, manager)
		assert.True(t, errors.Is(err, store.ErrNotFound))
	})
}

func TestService_Decide(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		current    models.Expense
		siblings   []models.Expense
		action     reconcile.ExpenseAction
		wantStatus models.ExpenseStatus
		wantTotal  float64
		wantAudit  models.AuditAction
	}{
		{
			name:       "approve adds to the approved total",
			current:    models.Expense{ID: 1, ShiftDataID: 9, Amount: 300, Status: models.ExpensePending},
			siblings:   []models.Expense{{ID: 1, ShiftDataID: 9, Amount: 300, Status: models.ExpensePending}, {ID: 2, ShiftDataID: 9, Amount: 200, Status: models.ExpenseApproved}},
			action:     reconcile.ActionApprove,
			wantStatus: models.ExpenseApproved,
			wantTotal:  500,
			wantAudit:  models.AuditActionApprove,
		},
		{
			name:       "reject keeps only other approved expenses",
			current:    models.Expense{ID: 1, ShiftDataID: 9, Amount: 300, Status: models.ExpensePending},
			siblings:   []models.Expense{{ID: 2, ShiftDataID: 9, Amount: 200, Status: models.ExpenseApproved}},
			action:     reconcile.ActionReject,
			wantStatus: models.ExpenseRejected,
			wantTotal:  200,
			wantAudit:  models.AuditActionReject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_expense.NewMockRepository(ctrl)
			svc := expense.NewService(repo)

			inTx(ctx, repo)
			repo.EXPECT().GetExpense(ctx, uint(1)).Return(tt.current, nil)
			repo.EXPECT().SaveExpense(ctx, gomock.Any()).Return(nil)
			repo.EXPECT().ListExpensesByShiftData(ctx, uint(9)).Return(tt.siblings, nil)
			repo.EXPECT().SetExpensesTotal(ctx, uint(9), tt.wantTotal).Return(nil)
			repo.EXPECT().AppendAudit(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, entry models.AuditLog) error {
				assert.Equal(t, tt.wantAudit, entry.Action)
				return nil
			})

			e, err := svc.Decide(ctx, 1, tt.action, manager)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, e.Status)
			require.NotNil(t, e.DecidedBy)
			assert.Equal(t, manager.UserID, *e.DecidedBy)
			assert.NotNil(t, e.DecidedAt)
		})
	}
}

func TestService_Decide_TerminalStates(t *testing.T) {
	ctx := context.Background()

	for _, status := range []models.ExpenseStatus{models.ExpenseApproved, models.ExpenseRejected} {
		t.Run(string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_expense.NewMockRepository(ctrl)
			svc := expense.NewService(repo)

			inTx(ctx, repo)
			repo.EXPECT().GetExpense(ctx, uint(1)).Return(models.Expense{ID: 1, Status: status}, nil)

			_, err := svc.Decide(ctx, 1, reconcile.ActionApprove, manager)
			assert.True(t, errors.Is(err, reconcile.ErrInvalidTransition))
		})
	}
}

func TestService_Decide_RollsBackOnAuditFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo)

	boom := errors.New("audit insert failed")
	inTx(ctx, repo)
	repo.EXPECT().GetExpense(ctx, uint(1)).Return(models.Expense{ID: 1, ShiftDataID: 9, Amount: 10, Status: models.ExpensePending}, nil)
	repo.EXPECT().SaveExpense(ctx, gomock.Any()).Return(nil)
	repo.EXPECT().ListExpensesByShiftData(ctx, uint(9)).Return(nil, nil)
	repo.EXPECT().SetExpensesTotal(ctx, uint(9), 10.0).Return(nil)
	repo.EXPECT().AppendAudit(ctx, gomock.Any()).Return(boom)

	_, err := svc.Decide(ctx, 1, reconcile.ActionApprove, manager)
	assert.ErrorIs(t, err, boom)
}

func TestService_Pending(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_expense.NewMockRepository(ctrl)
	svc := expense.NewService(repo)

	repo.EXPECT().ListExpensesByStatus(ctx, models.ExpensePending).Return([]models.Expense{
		{ID: 1, ShiftDataID: 9, Amount: 10, Status: models.ExpensePending},
		{ID: 2, ShiftDataID: 9, Amount: 20, Status: models.ExpensePending},
	}, nil)
	repo.EXPECT().GetShiftData(ctx, uint(9)).Return(models.ShiftData{
		ID: 9, ShiftID: 4, PumpProduct: "PMS - Pump 1", Attendant: models.Attendant{Name: "Ada"},
	}, nil).Times(1)

	items, err := svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ada", items[0].AttendantName)
	assert.Equal(t, uint(4), items[1].ShiftID)
}
