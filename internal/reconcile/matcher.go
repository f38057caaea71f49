package reconcile

import (
	"math"
	"time"

	"fuelstation-backend/internal/models"

	"github.com/shopspring/decimal"
)

// MatchTolerance absorbs sub-unit rounding between a cash count and the
// ledger.
const MatchTolerance = 1.0

type MatchStatus string

const (
	StatusMatched       MatchStatus = "MATCHED"
	StatusMismatch      MatchStatus = "MISMATCH"
	StatusIndeterminate MatchStatus = "INDETERMINATE"
)

// LedgerTotal is the remitted amount found in shift_data for one attendant
// and how many rows contributed to it.
type LedgerTotal struct {
	Remitted float64 `json:"remitted"`
	Records  int     `json:"records"`
}

type MatchResult struct {
	Status     MatchStatus `json:"status"`
	Declared   float64     `json:"declared"`
	Remitted   float64     `json:"remitted"`
	Difference float64     `json:"difference"`
}

// DeclaredTotal is what an attendant claims to hand over. The strict form
// also counts the POS amount the attendant reports.
func DeclaredTotal(physicalCash, expensesClaimed, posClaimed float64, strict bool) float64 {
	total := dec(physicalCash).Add(dec(expensesClaimed))
	if strict {
		total = total.Add(dec(posClaimed))
	}
	return total.InexactFloat64()
}

// MatchReconciliation compares a declared total with the ledger. Without any
// ledger rows the outcome is indeterminate, never a mismatch.
func MatchReconciliation(declared float64, ledger LedgerTotal) MatchResult {
	res := MatchResult{Declared: declared, Remitted: ledger.Remitted}
	if ledger.Records == 0 {
		res.Status = StatusIndeterminate
		return res
	}
	res.Difference = dec(declared).Sub(dec(ledger.Remitted)).InexactFloat64()
	if math.Abs(res.Difference) < MatchTolerance {
		res.Status = StatusMatched
	} else {
		res.Status = StatusMismatch
	}
	return res
}

// SoftJoinKey identifies ledger rows belonging to a cash count. A zero
// ShiftDate or empty ShiftTime widens the lookup to every shift of the branch.
type SoftJoinKey struct {
	BranchID      uint
	AttendantName string
	ShiftDate     time.Time
	ShiftTime     models.ShiftTime
}

// LedgerFor sums cash and POS remitted on every shift_data row whose
// attendant name matches key within the key's branch. records must have the
// Attendant association loaded.
func LedgerFor(key SoftJoinKey, shifts []models.Shift, records []models.ShiftData) LedgerTotal {
	byID := make(map[uint]models.Shift, len(shifts))
	for _, s := range shifts {
		byID[s.ID] = s
	}

	want := NormalizeName(key.AttendantName)
	sum := decimal.Zero
	n := 0
	for _, r := range records {
		s, ok := byID[r.ShiftID]
		if !ok || s.BranchID != key.BranchID {
			continue
		}
		if !key.ShiftDate.IsZero() && !sameDay(s.ShiftDate, key.ShiftDate) {
			continue
		}
		if key.ShiftTime != "" && s.ShiftTime != key.ShiftTime {
			continue
		}
		if NormalizeName(r.Attendant.Name) != want {
			continue
		}
		sum = sum.Add(dec(r.CashRemitted)).Add(dec(r.POSRemitted))
		n++
	}
	return LedgerTotal{Remitted: sum.InexactFloat64(), Records: n}
}

// ReportMatch is the reconciliation outcome of one cash analysis report.
type ReportMatch struct {
	ReportID      uint        `json:"report_id"`
	AttendantName string      `json:"attendant_name"`
	Ledger        LedgerTotal `json:"ledger"`
	Notes         []NoteLine  `json:"notes"`
	MatchResult
}

// ReconcileReport soft-joins a cash analysis report to the ledger and
// matches the two.
func ReconcileReport(report models.CashAnalysisReport, shifts []models.Shift, records []models.ShiftData, strict bool) ReportMatch {
	ledger := LedgerFor(SoftJoinKey{
		BranchID:      report.BranchID,
		AttendantName: report.AttendantName,
		ShiftDate:     report.ShiftDate,
		ShiftTime:     report.ShiftTime,
	}, shifts, records)
	declared := DeclaredTotal(report.TotalCash, report.ExpensesClaimed, report.POSClaimed, strict)
	return ReportMatch{
		ReportID:      report.ID,
		AttendantName: report.AttendantName,
		Ledger:        ledger,
		Notes:         NoteBreakdown(report.Denominations),
		MatchResult:   MatchReconciliation(declared, ledger),
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
