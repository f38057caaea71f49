package reconcile

import (
	"sort"

	"fuelstation-backend/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerItem is a shift_data row joined with its attendant and shift.
type LedgerItem struct {
	models.ShiftData
	AttendantName     string           `json:"attendant_name"`
	ShiftDate         string           `json:"shift_date"`
	ShiftTime         models.ShiftTime `json:"shift_time"`
	EffectiveVariance float64          `json:"effective_variance"`
}

type ShiftSummary struct {
	ShiftID       uint               `json:"shift_id"`
	ShiftDate     string             `json:"shift_date"`
	ShiftTime     models.ShiftTime   `json:"shift_time"`
	Status        models.ShiftStatus `json:"status"`
	GMSignedOff   bool               `json:"gm_signed_off"`
	TotalExpected float64            `json:"total_expected"`
	TotalCash     float64            `json:"total_cash"`
	TotalPOS      float64            `json:"total_pos"`
	TotalVariance float64            `json:"total_variance"`
}

type AttendantSummary struct {
	AttendantID       uint    `json:"attendant_id"`
	AttendantName     string  `json:"attendant_name"`
	TotalExpected     float64 `json:"total_expected"`
	TotalRemitted     float64 `json:"total_remitted"`
	TotalVariance     float64 `json:"total_variance"`
	ApprovedExpenses  float64 `json:"approved_expenses"`
	EffectiveVariance float64 `json:"effective_variance"`
}

// BranchAggregateRow is derived on every read and never stored. Shift is the
// most recently dated shift of the branch and is only a display choice: the
// totals cover every shift of the branch, open or closed.
type BranchAggregateRow struct {
	Branch          models.Branch      `json:"branch"`
	Shift           *models.Shift      `json:"shift"`
	Shifts          []ShiftSummary     `json:"shifts"`
	Attendants      []AttendantSummary `json:"attendants"`
	Items           []LedgerItem       `json:"items"`
	PendingExpenses []models.Expense   `json:"pending_expenses"`

	TotalExpected        float64 `json:"total_expected"`
	TotalCash            float64 `json:"total_cash"`
	TotalPOS             float64 `json:"total_pos"`
	PendingExpenseTotal  float64 `json:"pending_expense_total"`
	ApprovedExpenseTotal float64 `json:"approved_expense_total"`
	TotalVariance        float64 `json:"total_variance"`
	EffectiveVariance    float64 `json:"effective_variance"`
}

type GlobalTotals struct {
	Branches             int     `json:"branches"`
	Records              int     `json:"records"`
	PendingExpenseCount  int     `json:"pending_expense_count"`
	TotalExpected        float64 `json:"total_expected"`
	TotalCash            float64 `json:"total_cash"`
	TotalPOS             float64 `json:"total_pos"`
	PendingExpenseTotal  float64 `json:"pending_expense_total"`
	ApprovedExpenseTotal float64 `json:"approved_expense_total"`
	TotalVariance        float64 `json:"total_variance"`
	EffectiveVariance    float64 `json:"effective_variance"`
}

// Engine builds aggregates under an expense policy. The zero value uses
// PolicyInformational.
type Engine struct {
	Policy ExpensePolicy
}

// ComputeGlobalOverview aggregates with the informational expense policy.
func ComputeGlobalOverview(branches []models.Branch, shifts []models.Shift, records []models.ShiftData, expenses []models.Expense) []BranchAggregateRow {
	return Engine{}.Overview(branches, shifts, records, expenses)
}

// Overview emits one row per branch, in the order branches are given. The
// inputs are not modified.
func (e Engine) Overview(branches []models.Branch, shifts []models.Shift, records []models.ShiftData, expenses []models.Expense) []BranchAggregateRow {
	shiftsByBranch := make(map[uint][]models.Shift)
	for _, s := range shifts {
		shiftsByBranch[s.BranchID] = append(shiftsByBranch[s.BranchID], s)
	}
	recordsByShift := make(map[uint][]models.ShiftData)
	for _, r := range records {
		recordsByShift[r.ShiftID] = append(recordsByShift[r.ShiftID], r)
	}
	expensesByRecord := make(map[uint][]models.Expense)
	for _, x := range expenses {
		expensesByRecord[x.ShiftDataID] = append(expensesByRecord[x.ShiftDataID], x)
	}

	rows := make([]BranchAggregateRow, 0, len(branches))
	for _, b := range branches {
		bs := mostRecentFirst(shiftsByBranch[b.ID])
		rows = append(rows, e.branchRow(b, bs, recordsByShift, expensesByRecord))
	}
	return rows
}

func (e Engine) branchRow(b models.Branch, shifts []models.Shift, recordsByShift map[uint][]models.ShiftData, expensesByRecord map[uint][]models.Expense) BranchAggregateRow {
	row := BranchAggregateRow{
		Branch:          b,
		Shifts:          make([]ShiftSummary, 0, len(shifts)),
		Attendants:      []AttendantSummary{},
		Items:           []LedgerItem{},
		PendingExpenses: []models.Expense{},
	}
	if len(shifts) > 0 {
		rep := shifts[0]
		row.Shift = &rep
	}

	var expected, cash, pos, pending, approved decimal.Decimal
	attIndex := make(map[uint]int)
	type attAcc struct{ expected, remitted, approved decimal.Decimal }
	var attTotals []attAcc

	for _, s := range shifts {
		var sExp, sCash, sPOS decimal.Decimal
		for _, r := range recordsByShift[s.ID] {
			recApproved := decimal.Zero
			for _, x := range expensesByRecord[r.ID] {
				switch x.Status {
				case models.ExpensePending:
					row.PendingExpenses = append(row.PendingExpenses, x)
					pending = pending.Add(dec(x.Amount))
				case models.ExpenseApproved:
					recApproved = recApproved.Add(dec(x.Amount))
				}
			}
			approved = approved.Add(recApproved)

			variance := RecomputeVariance(r)
			row.Items = append(row.Items, LedgerItem{
				ShiftData:         r,
				AttendantName:     r.Attendant.Name,
				ShiftDate:         s.ShiftDate.Format("2006-01-02"),
				ShiftTime:         s.ShiftTime,
				EffectiveVariance: EffectiveVariance(variance, recApproved.InexactFloat64(), e.Policy),
			})

			sExp = sExp.Add(dec(r.ExpectedAmount))
			sCash = sCash.Add(dec(r.CashRemitted))
			sPOS = sPOS.Add(dec(r.POSRemitted))

			idx, ok := attIndex[r.AttendantID]
			if !ok {
				idx = len(row.Attendants)
				attIndex[r.AttendantID] = idx
				row.Attendants = append(row.Attendants, AttendantSummary{AttendantID: r.AttendantID, AttendantName: r.Attendant.Name})
				attTotals = append(attTotals, attAcc{})
			}
			acc := &attTotals[idx]
			acc.expected = acc.expected.Add(dec(r.ExpectedAmount))
			acc.remitted = acc.remitted.Add(dec(r.CashRemitted)).Add(dec(r.POSRemitted))
			acc.approved = acc.approved.Add(recApproved)
		}

		row.Shifts = append(row.Shifts, ShiftSummary{
			ShiftID:       s.ID,
			ShiftDate:     s.ShiftDate.Format("2006-01-02"),
			ShiftTime:     s.ShiftTime,
			Status:        s.Status,
			GMSignedOff:   s.GMSignedOff,
			TotalExpected: sExp.InexactFloat64(),
			TotalCash:     sCash.InexactFloat64(),
			TotalPOS:      sPOS.InexactFloat64(),
			TotalVariance: sCash.Add(sPOS).Sub(sExp).InexactFloat64(),
		})
		expected = expected.Add(sExp)
		cash = cash.Add(sCash)
		pos = pos.Add(sPOS)
	}

	for i, acc := range attTotals {
		v := acc.remitted.Sub(acc.expected).InexactFloat64()
		a := &row.Attendants[i]
		a.TotalExpected = acc.expected.InexactFloat64()
		a.TotalRemitted = acc.remitted.InexactFloat64()
		a.TotalVariance = v
		a.ApprovedExpenses = acc.approved.InexactFloat64()
		a.EffectiveVariance = EffectiveVariance(v, a.ApprovedExpenses, e.Policy)
	}

	row.TotalExpected = expected.InexactFloat64()
	row.TotalCash = cash.InexactFloat64()
	row.TotalPOS = pos.InexactFloat64()
	row.PendingExpenseTotal = pending.InexactFloat64()
	row.ApprovedExpenseTotal = approved.InexactFloat64()
	row.TotalVariance = cash.Add(pos).Sub(expected).InexactFloat64()
	row.EffectiveVariance = EffectiveVariance(row.TotalVariance, row.ApprovedExpenseTotal, e.Policy)
	return row
}

// SummarizeGlobal adds up branch rows into global totals.
func SummarizeGlobal(rows []BranchAggregateRow) GlobalTotals {
	var expected, cash, pos, pending, approved, variance, effective decimal.Decimal
	g := GlobalTotals{Branches: len(rows)}
	for _, r := range rows {
		g.Records += len(r.Items)
		g.PendingExpenseCount += len(r.PendingExpenses)
		expected = expected.Add(dec(r.TotalExpected))
		cash = cash.Add(dec(r.TotalCash))
		pos = pos.Add(dec(r.TotalPOS))
		pending = pending.Add(dec(r.PendingExpenseTotal))
		approved = approved.Add(dec(r.ApprovedExpenseTotal))
		variance = variance.Add(dec(r.TotalVariance))
		effective = effective.Add(dec(r.EffectiveVariance))
	}
	g.TotalExpected = expected.InexactFloat64()
	g.TotalCash = cash.InexactFloat64()
	g.TotalPOS = pos.InexactFloat64()
	g.PendingExpenseTotal = pending.InexactFloat64()
	g.ApprovedExpenseTotal = approved.InexactFloat64()
	g.TotalVariance = variance.InexactFloat64()
	g.EffectiveVariance = effective.InexactFloat64()
	return g
}

// mostRecentFirst returns a copy ordered by shift date descending. Shifts on
// the same date keep their input order.
func mostRecentFirst(shifts []models.Shift) []models.Shift {
	out := make([]models.Shift, len(shifts))
	copy(out, shifts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ShiftDate.After(out[j].ShiftDate)
	})
	return out
}
