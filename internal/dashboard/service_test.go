package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fuelstation-backend/internal/dashboard"
	mock_dashboard "fuelstation-backend/internal/dashboard/mocks"
	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func fixture() ([]models.Branch, []models.Shift, []models.ShiftData, []models.Expense) {
	branches := []models.Branch{{ID: 1, Name: "Ikeja"}, {ID: 2, Name: "Lekki"}}
	shifts := []models.Shift{
		{ID: 10, BranchID: 1, ShiftDate: day(14), ShiftTime: models.ShiftMorning, Status: models.ShiftOpen},
		{ID: 20, BranchID: 2, ShiftDate: day(12), ShiftTime: models.ShiftEvening, Status: models.ShiftClosed},
	}
	records := []models.ShiftData{
		{ID: 100, ShiftID: 10, AttendantID: 5, ExpectedAmount: 300, CashRemitted: 200, POSRemitted: 90, Variance: -10,
			Attendant: models.Attendant{ID: 5, Name: "Ada"}},
		{ID: 200, ShiftID: 20, AttendantID: 6, ExpectedAmount: 500, CashRemitted: 450, POSRemitted: 0, Variance: -50,
			Attendant: models.Attendant{ID: 6, Name: "Ben"}},
	}
	expenses := []models.Expense{
		{ID: 1, ShiftDataID: 100, Amount: 7, Status: models.ExpensePending},
		{ID: 2, ShiftDataID: 200, Amount: 20, Status: models.ExpenseApproved},
	}
	return branches, shifts, records, expenses
}

func TestService_Overview(t *testing.T) {
	ctx := context.Background()

	t.Run("all branches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_dashboard.NewMockRepository(ctrl)
		svc := dashboard.NewService(repo, reconcile.PolicyInformational, time.UTC)

		branches, shifts, records, expenses := fixture()
		repo.EXPECT().ListBranches(ctx).Return(branches, nil)
		repo.EXPECT().ListShifts(ctx, uint(0)).Return(shifts, nil)
		repo.EXPECT().ListShiftDataByShifts(ctx, []uint{10, 20}).Return(records, nil)
		repo.EXPECT().ListExpensesByShiftDataIDs(ctx, []uint{100, 200}).Return(expenses, nil)

		ov, err := svc.Overview(ctx, 0)
		require.NoError(t, err)
		require.Len(t, ov.Branches, 2)
		assert.Equal(t, reconcile.PolicyInformational, ov.Policy)
		assert.Equal(t, 800.0, ov.Totals.TotalExpected)
		assert.Equal(t, -60.0, ov.Totals.TotalVariance)
		assert.Equal(t, 1, ov.Totals.PendingExpenseCount)
		assert.Equal(t, 2, ov.Totals.Records)
	})

	t.Run("offset policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_dashboard.NewMockRepository(ctrl)
		svc := dashboard.NewService(repo, reconcile.PolicyOffset, time.UTC)

		branches, shifts, records, expenses := fixture()
		repo.EXPECT().ListBranches(ctx).Return(branches, nil)
		repo.EXPECT().ListShifts(ctx, uint(2)).Return(shifts[1:], nil)
		repo.EXPECT().ListShiftDataByShifts(ctx, []uint{20}).Return(records[1:], nil)
		repo.EXPECT().ListExpensesByShiftDataIDs(ctx, []uint{200}).Return(expenses[1:], nil)

		ov, err := svc.Overview(ctx, 2)
		require.NoError(t, err)
		require.Len(t, ov.Branches, 1)
		assert.Equal(t, "Lekki", ov.Branches[0].Branch.Name)
		assert.Equal(t, -50.0, ov.Branches[0].TotalVariance)
		assert.Equal(t, -30.0, ov.Branches[0].EffectiveVariance)
	})

	t.Run("unknown branch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_dashboard.NewMockRepository(ctrl)
		svc := dashboard.NewService(repo, "", nil)

		branches, _, _, _ := fixture()
		repo.EXPECT().ListBranches(ctx).Return(branches, nil)

		_, err := svc.Overview(ctx, 9)
		assert.True(t, reconcile.IsResolution(err))
	})

	t.Run("read failure yields no partial aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_dashboard.NewMockRepository(ctrl)
		svc := dashboard.NewService(repo, "", nil)

		branches, shifts, _, _ := fixture()
		boom := errors.New("connection reset")
		repo.EXPECT().ListBranches(ctx).Return(branches, nil)
		repo.EXPECT().ListShifts(ctx, uint(0)).Return(shifts, nil)
		repo.EXPECT().ListShiftDataByShifts(ctx, []uint{10, 20}).Return(nil, boom)

		ov, err := svc.Overview(ctx, 0)
		var aggErr *reconcile.AggregationError
		require.ErrorAs(t, err, &aggErr)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, ov.Branches)
	})
}

func TestService_Trend(t *testing.T) {
	ctx := context.Background()
	now := func() time.Time { return time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC) }

	t.Run("window includes today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_dashboard.NewMockRepository(ctrl)
		svc := dashboard.NewService(repo, "", time.UTC).WithClock(now)

		_, shifts, records, _ := fixture()
		repo.EXPECT().ListShiftsSince(ctx, uint(0), day(8)).Return(shifts, nil)
		repo.EXPECT().ListShiftDataByShifts(ctx, []uint{10, 20}).Return(records, nil)

		tr, err := svc.Trend(ctx, 7, 0)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-08", tr.From)
		assert.Equal(t, "2025-03-14", tr.To)
		require.Len(t, tr.Points, 2)
		assert.Equal(t, "2025-03-12", tr.Points[0].Date)
		assert.Equal(t, "2025-03-14", tr.Points[1].Date)
		assert.Equal(t, -60.0, tr.GrandTotals.Variance)
		assert.Equal(t, 90.0, tr.GrandTotals.Actual)
	})

	t.Run("non-positive days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := dashboard.NewService(mock_dashboard.NewMockRepository(ctrl), "", nil)

		_, err := svc.Trend(ctx, 0, 0)
		assert.True(t, reconcile.IsValidation(err))
	})

	t.Run("shift read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_dashboard.NewMockRepository(ctrl)
		svc := dashboard.NewService(repo, "", nil).WithClock(now)

		repo.EXPECT().ListShiftsSince(ctx, uint(3), day(14)).Return(nil, errors.New("timeout"))

		_, err := svc.Trend(ctx, 1, 3)
		var aggErr *reconcile.AggregationError
		assert.ErrorAs(t, err, &aggErr)
	})
}
