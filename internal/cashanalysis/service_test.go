package cashanalysis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/cashanalysis"
	mock_cashanalysis "fuelstation-backend/internal/cashanalysis/mocks"
	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"
	"fuelstation-backend/internal/store"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	manager = audit.Actor{UserID: 1, UserName: "Grace"}
	march14 = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
)

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("totals the note counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_cashanalysis.NewMockRepository(ctrl)
		svc := cashanalysis.NewService(repo)

		repo.EXPECT().GetBranch(ctx, uint(1)).Return(models.Branch{ID: 1}, nil)
		repo.EXPECT().CreateCashReport(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *models.CashAnalysisReport) error {
			r.ID = 3
			return nil
		})
		repo.EXPECT().AppendAudit(ctx, gomock.Any()).Return(nil)

		report, err := svc.Submit(ctx, cashanalysis.SubmitInput{
			BranchID:      1,
			AttendantName: " Ada  Obi ",
			ProductType:   "pms",
			Denominations: map[int]int{1000: 40, 500: 10, 50: 3, 7: 99},
			ShiftDate:     march14,
			ShiftTime:     models.ShiftMorning,
		}, manager)
		require.NoError(t, err)
		assert.Equal(t, 45150.0, report.TotalCash)
		assert.Equal(t, "Ada Obi", report.AttendantName)
		assert.Equal(t, "PMS", report.ProductType)
		assert.Equal(t, models.Denominations{1000: 40, 500: 10, 50: 3}, report.Denominations)
	})

	t.Run("negative count is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := cashanalysis.NewService(mock_cashanalysis.NewMockRepository(ctrl))

		_, err := svc.Submit(ctx, cashanalysis.SubmitInput{
			BranchID: 1, AttendantName: "Ada", Denominations: map[int]int{100: -1},
			ShiftDate: march14, ShiftTime: models.ShiftMorning,
		}, manager)
		assert.True(t, reconcile.IsValidation(err))
	})

	t.Run("unknown branch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_cashanalysis.NewMockRepository(ctrl)
		svc := cashanalysis.NewService(repo)

		repo.EXPECT().GetBranch(ctx, uint(8)).Return(models.Branch{}, store.ErrNotFound)
		_, err := svc.Submit(ctx, cashanalysis.SubmitInput{
			BranchID: 8, AttendantName: "Ada", ShiftDate: march14, ShiftTime: models.ShiftEvening,
		}, manager)
		assert.True(t, reconcile.IsResolution(err))
	})
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()
	shifts := []models.Shift{
		{ID: 1, BranchID: 1, ShiftDate: march14, ShiftTime: models.ShiftMorning},
		{ID: 2, BranchID: 1, ShiftDate: march14, ShiftTime: models.ShiftEvening},
	}
	records := []models.ShiftData{
		{ID: 10, ShiftID: 1, CashRemitted: 45000, POSRemitted: 10000, Attendant: models.Attendant{Name: "Ada Obi"}},
		{ID: 11, ShiftID: 2, CashRemitted: 20000, Attendant: models.Attendant{Name: "Musa"}},
	}
	reports := []models.CashAnalysisReport{
		{ID: 1, BranchID: 1, AttendantName: "ada obi", TotalCash: 50000, ExpensesClaimed: 5000, ShiftDate: march14, ShiftTime: models.ShiftMorning},
		{ID: 2, BranchID: 1, AttendantName: "Musa", TotalCash: 19000, ShiftDate: march14, ShiftTime: models.ShiftEvening},
		{ID: 3, BranchID: 1, AttendantName: "Nobody", TotalCash: 100, ShiftDate: march14, ShiftTime: models.ShiftEvening},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_cashanalysis.NewMockRepository(ctrl)
	svc := cashanalysis.NewService(repo)

	repo.EXPECT().ListCashReports(ctx, uint(1), time.Time{}, models.ShiftTime("")).Return(reports, nil)
	repo.EXPECT().ListShifts(ctx, uint(1)).Return(shifts, nil)
	repo.EXPECT().ListShiftDataByShifts(ctx, []uint{1, 2}).Return(records, nil)

	res, err := svc.Reconcile(ctx, cashanalysis.Query{BranchID: 1})
	require.NoError(t, err)
	require.Len(t, res.Reports, 3)

	assert.Equal(t, reconcile.StatusMatched, res.Reports[0].Status)
	assert.Equal(t, 55000.0, res.Reports[0].Ledger.Remitted)
	assert.Equal(t, reconcile.StatusMismatch, res.Reports[1].Status)
	assert.Equal(t, -1000.0, res.Reports[1].Difference)
	assert.Equal(t, reconcile.StatusIndeterminate, res.Reports[2].Status)
	assert.Equal(t, cashanalysis.Summary{Matched: 1, Mismatched: 1, Indeterminate: 1}, res.Summary)
}

func TestService_Reconcile_ReadFailureAborts(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_cashanalysis.NewMockRepository(ctrl)
	svc := cashanalysis.NewService(repo)

	boom := errors.New("connection reset")
	repo.EXPECT().ListCashReports(ctx, uint(1), march14, models.ShiftMorning).Return(nil, nil)
	repo.EXPECT().ListShifts(ctx, uint(1)).Return(nil, boom)

	res, err := svc.Reconcile(ctx, cashanalysis.Query{BranchID: 1, ShiftDate: march14, ShiftTime: models.ShiftMorning})
	var aggErr *reconcile.AggregationError
	require.True(t, errors.As(err, &aggErr))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, res.Reports)
}
