package importer_test

import (
	"context"
	"errors"
	"testing"

	"fuelstation-backend/internal/audit"
	"fuelstation-backend/internal/config"
	"fuelstation-backend/internal/importer"
	mock_importer "fuelstation-backend/internal/importer/mocks"
	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"
	"fuelstation-backend/internal/store"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var manager = audit.Actor{UserID: 1, UserName: "Grace"}

func inTx(repo *mock_importer.MockRepository) func(context.Context, func(importer.Repository) error) error {
	return func(_ context.Context, fn func(importer.Repository) error) error {
		return fn(repo)
	}
}

func TestService_Preview(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_importer.NewMockRepository(ctrl)
	svc := importer.NewService(repo, config.PriceTable{"PMS": 650})

	repo.EXPECT().ListBranches(ctx).Return(branches, nil)
	repo.EXPECT().ListAttendants(ctx, uint(0)).Return([]models.Attendant{{ID: 3, BranchID: 1, Name: "Ada Obi"}}, nil)

	p, err := svc.Preview(ctx, grid{meterSheet(), cashSheet()}, importer.Options{Branch: "Ikeja"})
	require.NoError(t, err)
	require.Len(t, p.ShiftRecords, 2)
	assert.Equal(t, 65000.0, p.ShiftRecords[1].ExpectedAmount, "price taken from the price table")
	assert.Len(t, p.CashEntries, 2)
	assert.Len(t, p.Sheets, 2)
	assert.Len(t, p.Proposals, 1)
}

func TestService_Preview_ListFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_importer.NewMockRepository(ctrl)
	svc := importer.NewService(repo, nil)

	repo.EXPECT().ListBranches(ctx).Return(nil, errors.New("db down"))

	_, err := svc.Preview(ctx, grid{meterSheet()}, importer.Options{})
	assert.Error(t, err)
}

func applyFixture() importer.Result {
	return importer.Result{
		ShiftRecords: []importer.ShiftRecord{
			{Line: 2, BranchID: 1, Attendant: reconcile.Resolved(7, "Ada"), PumpProduct: "PMS 1",
				ExpectedAmount: 1000, CashRemitted: 900, POSRemitted: 100, Expenses: 50, ExpenseNote: "generator diesel",
				ShiftDate: march14, ShiftTime: models.ShiftMorning},
			{Line: 3, BranchID: 1, Attendant: reconcile.Unresolved("Ben"), PumpProduct: "PMS 2",
				ExpectedAmount: 500, CashRemitted: 500, ShiftDate: march14, ShiftTime: models.ShiftMorning},
			{Line: 4, BranchID: 2, Attendant: reconcile.Resolved(8, "Chi"), PumpProduct: "AGO 1",
				ExpectedAmount: 300, CashRemitted: 250, Variance: -50, ShiftDate: march14, ShiftTime: models.ShiftEvening},
		},
		CashEntries: []importer.CashEntry{
			{Column: "B", BranchID: 1, AttendantName: "Ada", TotalCash: 900, ShiftDate: march14, ShiftTime: models.ShiftMorning},
		},
		Skipped: 1,
	}
}

func TestService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("groups commit independently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_importer.NewMockRepository(ctrl)
		svc := importer.NewService(repo, nil)

		var rows []models.ShiftData
		var expenses []models.Expense
		var reports []models.CashAnalysisReport
		var entry models.AuditLog

		repo.EXPECT().Transaction(ctx, gomock.Any()).DoAndReturn(inTx(repo)).Times(2)
		repo.EXPECT().FindOpenShift(ctx, uint(1), march14, models.ShiftMorning).Return(models.Shift{ID: 11, BranchID: 1}, nil)
		repo.EXPECT().CreateAttendant(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *models.Attendant) error {
			assert.Equal(t, "Ben", a.Name)
			assert.Equal(t, uint(1), a.BranchID)
			a.ID = 9
			return nil
		})
		repo.EXPECT().CreateShiftData(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *models.ShiftData) error {
			r.ID = uint(100 + len(rows))
			rows = append(rows, *r)
			return nil
		}).Times(2)
		repo.EXPECT().CreateExpense(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *models.Expense) error {
			expenses = append(expenses, *e)
			return nil
		})
		repo.EXPECT().CreateCashReport(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *models.CashAnalysisReport) error {
			reports = append(reports, *r)
			return nil
		})

		repo.EXPECT().FindOpenShift(ctx, uint(2), march14, models.ShiftEvening).Return(models.Shift{}, store.ErrNotFound)
		repo.EXPECT().CreateShift(ctx, gomock.Any()).Return(errors.New("duplicate key value"))

		repo.EXPECT().AppendAudit(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e models.AuditLog) error {
			entry = e
			return nil
		})

		rep, err := svc.Apply(ctx, applyFixture(), importer.ApplyOptions{ConfirmNewAttendants: true}, manager)
		require.NoError(t, err)

		assert.NotEmpty(t, rep.BatchID)
		assert.Equal(t, 2, rep.Inserted)
		assert.Equal(t, 1, rep.CashInserted)
		assert.Equal(t, 1, rep.Skipped)
		assert.Equal(t, 1, rep.AttendantsCreated)

		require.Len(t, rep.Groups, 2)
		assert.Equal(t, uint(11), rep.Groups[0].ShiftID)
		assert.Equal(t, 2, rep.Groups[0].Records)
		assert.Empty(t, rep.Groups[0].Error)
		assert.Contains(t, rep.Groups[1].Error, "create shift")
		assert.Zero(t, rep.Groups[1].Records)

		require.Len(t, rows, 2)
		assert.Equal(t, uint(7), rows[0].AttendantID)
		assert.Equal(t, uint(9), rows[1].AttendantID)
		for _, r := range rows {
			assert.Equal(t, uint(11), r.ShiftID)
			assert.Equal(t, rep.BatchID, r.ImportBatchID)
		}

		require.Len(t, expenses, 1)
		assert.Equal(t, uint(100), expenses[0].ShiftDataID)
		assert.Equal(t, models.ExpensePending, expenses[0].Status)
		assert.Equal(t, "generator diesel", expenses[0].Description)

		require.Len(t, reports, 1)
		assert.Equal(t, rep.BatchID, reports[0].ImportBatchID)

		assert.Equal(t, models.AuditActionImport, entry.Action)
		assert.Equal(t, rep.BatchID, entry.EntityRef)
	})

	t.Run("unconfirmed proposals are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_importer.NewMockRepository(ctrl)
		svc := importer.NewService(repo, nil)

		res := applyFixture()
		res.ShiftRecords = res.ShiftRecords[1:2]
		res.CashEntries = nil

		rep, err := svc.Apply(ctx, res, importer.ApplyOptions{}, manager)
		assert.ErrorIs(t, err, importer.ErrNoRowsInserted)
		assert.Equal(t, 2, rep.Skipped)
		require.Len(t, rep.Problems, 1)
		assert.Contains(t, rep.Problems[0].Reason, "Ben")
	})

	t.Run("created attendant is reused by later groups", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_importer.NewMockRepository(ctrl)
		svc := importer.NewService(repo, nil)

		res := applyFixture()
		ben := res.ShiftRecords[1]
		benEvening := ben
		benEvening.ShiftTime = models.ShiftEvening
		res.ShiftRecords = []importer.ShiftRecord{ben, benEvening}
		res.CashEntries = nil

		var ids []uint
		repo.EXPECT().Transaction(ctx, gomock.Any()).DoAndReturn(inTx(repo)).Times(2)
		repo.EXPECT().FindOpenShift(ctx, uint(1), march14, gomock.Any()).Return(models.Shift{ID: 11}, nil).Times(2)
		repo.EXPECT().CreateAttendant(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, a *models.Attendant) error {
			a.ID = 9
			return nil
		}).Times(1)
		repo.EXPECT().CreateShiftData(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *models.ShiftData) error {
			ids = append(ids, r.AttendantID)
			return nil
		}).Times(2)
		repo.EXPECT().AppendAudit(ctx, gomock.Any()).Return(nil)

		rep, err := svc.Apply(ctx, res, importer.ApplyOptions{ConfirmNewAttendants: true}, manager)
		require.NoError(t, err)
		assert.Equal(t, []uint{9, 9}, ids)
		assert.Equal(t, 1, rep.AttendantsCreated)
	})

	t.Run("nothing to insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := importer.NewService(mock_importer.NewMockRepository(ctrl), nil)

		res := importer.NormalizeImportRows(extractCSV(t, flatCSV), nil, nil)
		_, err := svc.Apply(ctx, res, importer.ApplyOptions{ConfirmNewAttendants: true}, manager)
		require.ErrorIs(t, err, importer.ErrNoRowsInserted)
		assert.Contains(t, err.Error(), "no valid rows inserted: 0 of 0 rows inserted, 5 skipped")
	})

	t.Run("audit failure does not undo the import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_importer.NewMockRepository(ctrl)
		svc := importer.NewService(repo, nil)

		res := applyFixture()
		res.ShiftRecords = res.ShiftRecords[2:]
		res.CashEntries = nil

		repo.EXPECT().Transaction(ctx, gomock.Any()).DoAndReturn(inTx(repo))
		repo.EXPECT().FindOpenShift(ctx, uint(2), march14, models.ShiftEvening).Return(models.Shift{ID: 20}, nil)
		repo.EXPECT().CreateShiftData(ctx, gomock.Any()).Return(nil)
		repo.EXPECT().AppendAudit(ctx, gomock.Any()).Return(errors.New("audit table locked"))

		rep, err := svc.Apply(ctx, res, importer.ApplyOptions{}, manager)
		require.NoError(t, err)
		assert.Equal(t, 1, rep.Inserted)
	})
}
