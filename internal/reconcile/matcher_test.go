package reconcile_test

import (
	"testing"
	"time"

	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchReconciliation(t *testing.T) {
	tests := []struct {
		name     string
		declared float64
		ledger   reconcile.LedgerTotal
		want     reconcile.MatchStatus
		wantDiff float64
	}{
		{name: "equal totals", declared: 100, ledger: reconcile.LedgerTotal{Remitted: 100, Records: 1}, want: reconcile.StatusMatched, wantDiff: 0},
		{name: "one unit short of ledger", declared: 100, ledger: reconcile.LedgerTotal{Remitted: 101, Records: 1}, want: reconcile.StatusMismatch, wantDiff: -1},
		{name: "within rounding tolerance", declared: 100, ledger: reconcile.LedgerTotal{Remitted: 100.5, Records: 2}, want: reconcile.StatusMatched, wantDiff: -0.5},
		{name: "declared above ledger", declared: 250, ledger: reconcile.LedgerTotal{Remitted: 200, Records: 1}, want: reconcile.StatusMismatch, wantDiff: 50},
		{name: "no ledger rows", declared: 100, ledger: reconcile.LedgerTotal{}, want: reconcile.StatusIndeterminate, wantDiff: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reconcile.MatchReconciliation(tt.declared, tt.ledger)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, tt.wantDiff, got.Difference)
			assert.Equal(t, tt.declared, got.Declared)
		})
	}
}

func TestDeclaredTotal(t *testing.T) {
	assert.Equal(t, 1500.0, reconcile.DeclaredTotal(1000, 500, 300, false))
	assert.Equal(t, 1800.0, reconcile.DeclaredTotal(1000, 500, 300, true))
}

func ledgerFixture() ([]models.Shift, []models.ShiftData) {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	shifts := []models.Shift{
		{ID: 1, BranchID: 1, ShiftDate: day, ShiftTime: models.ShiftMorning},
		{ID: 2, BranchID: 1, ShiftDate: day, ShiftTime: models.ShiftEvening},
		{ID: 3, BranchID: 2, ShiftDate: day, ShiftTime: models.ShiftMorning},
	}
	records := []models.ShiftData{
		{ID: 10, ShiftID: 1, AttendantID: 7, CashRemitted: 40000, POSRemitted: 5000, Attendant: models.Attendant{ID: 7, Name: "John Okafor"}},
		{ID: 11, ShiftID: 1, AttendantID: 7, CashRemitted: 10000, POSRemitted: 0, Attendant: models.Attendant{ID: 7, Name: "John Okafor"}},
		{ID: 12, ShiftID: 2, AttendantID: 7, CashRemitted: 999, Attendant: models.Attendant{ID: 7, Name: "John Okafor"}},
		{ID: 13, ShiftID: 3, AttendantID: 9, CashRemitted: 777, Attendant: models.Attendant{ID: 9, Name: "john okafor"}},
		{ID: 14, ShiftID: 1, AttendantID: 8, CashRemitted: 123, Attendant: models.Attendant{ID: 8, Name: "Mary"}},
	}
	return shifts, records
}

func TestLedgerFor(t *testing.T) {
	shifts, records := ledgerFixture()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("name match ignores case and spacing", func(t *testing.T) {
		got := reconcile.LedgerFor(reconcile.SoftJoinKey{BranchID: 1, AttendantName: "  JOHN   okafor ", ShiftDate: day, ShiftTime: models.ShiftMorning}, shifts, records)
		assert.Equal(t, reconcile.LedgerTotal{Remitted: 55000, Records: 2}, got)
	})

	t.Run("zero date and empty time widen to the whole branch", func(t *testing.T) {
		got := reconcile.LedgerFor(reconcile.SoftJoinKey{BranchID: 1, AttendantName: "john okafor"}, shifts, records)
		assert.Equal(t, reconcile.LedgerTotal{Remitted: 55999, Records: 3}, got)
	})

	t.Run("other branches never contribute", func(t *testing.T) {
		got := reconcile.LedgerFor(reconcile.SoftJoinKey{BranchID: 2, AttendantName: "John Okafor"}, shifts, records)
		assert.Equal(t, reconcile.LedgerTotal{Remitted: 777, Records: 1}, got)
	})

	t.Run("unknown attendant", func(t *testing.T) {
		got := reconcile.LedgerFor(reconcile.SoftJoinKey{BranchID: 1, AttendantName: "Jon Okafor"}, shifts, records)
		assert.Equal(t, 0, got.Records)
	})
}

func TestReconcileReport(t *testing.T) {
	shifts, records := ledgerFixture()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	report := models.CashAnalysisReport{ID: 5, BranchID: 1, AttendantName: "john okafor", TotalCash: 50000, ExpensesClaimed: 4500, POSClaimed: 5000, ShiftDate: day, ShiftTime: models.ShiftMorning}

	lenient := reconcile.ReconcileReport(report, shifts, records, false)
	assert.Equal(t, reconcile.StatusMismatch, lenient.Status)
	assert.Equal(t, -500.0, lenient.Difference)

	strict := reconcile.ReconcileReport(report, shifts, records, true)
	assert.Equal(t, reconcile.StatusMismatch, strict.Status)
	assert.Equal(t, 4500.0, strict.Difference)

	report.ExpensesClaimed = 5000
	matched := reconcile.ReconcileReport(report, shifts, records, false)
	assert.Equal(t, reconcile.StatusMatched, matched.Status)
	assert.Equal(t, uint(5), matched.ReportID)

	report.AttendantName = "Nobody"
	none := reconcile.ReconcileReport(report, shifts, records, false)
	assert.Equal(t, reconcile.StatusIndeterminate, none.Status)
}

func TestResolveAttendant(t *testing.T) {
	attendants := []models.Attendant{
		{ID: 1, BranchID: 1, Name: "Ada Eze"},
		{ID: 2, BranchID: 2, Name: "Bayo"},
	}

	ref := reconcile.ResolveAttendant(attendants, 1, " ada EZE")
	assert.True(t, ref.IsResolved())
	assert.Equal(t, uint(1), ref.ID)

	ref = reconcile.ResolveAttendant(attendants, 1, "Bayo")
	assert.False(t, ref.IsResolved())
	assert.Equal(t, "Bayo", ref.RawName)

	ref = reconcile.ResolveAttendant(attendants, 1, "Ada Ezee")
	assert.False(t, ref.IsResolved())
}

func TestResolveBranch(t *testing.T) {
	branches := []models.Branch{{ID: 1, Name: "Lekki"}, {ID: 12, Name: "Ikeja Main"}}

	b, err := reconcile.ResolveBranch(branches, "12")
	assert.NoError(t, err)
	assert.Equal(t, "Ikeja Main", b.Name)

	b, err = reconcile.ResolveBranch(branches, "  ikeja   MAIN ")
	assert.NoError(t, err)
	assert.Equal(t, uint(12), b.ID)

	_, err = reconcile.ResolveBranch(branches, "Ajah")
	var re *reconcile.ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, reconcile.KindBranch, re.Kind)
	assert.Equal(t, `unknown branch "Ajah"`, re.Error())
}
