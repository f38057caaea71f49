package importer

import (
	"fmt"
	"time"

	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"
)

// ShiftRecord is a meter row resolved to a branch, with its expected amount
// and variance computed. Attendant may still be unresolved.
type ShiftRecord struct {
	Sheet string `json:"sheet"`
	Line  int    `json:"line"`

	BranchID       uint                   `json:"branch_id"`
	Attendant      reconcile.AttendantRef `json:"attendant"`
	PumpProduct    string                 `json:"pump_product"`
	OpeningMeter   float64                `json:"opening_meter"`
	ClosingMeter   float64                `json:"closing_meter"`
	PricePerLiter  float64                `json:"price_per_liter"`
	ExpectedAmount float64                `json:"expected_amount"`
	CashRemitted   float64                `json:"cash_remitted"`
	POSRemitted    float64                `json:"pos_remitted"`
	Variance       float64                `json:"variance"`
	Expenses       float64                `json:"expenses"`
	ExpenseNote    string                 `json:"expense_description,omitempty"`
	ShiftDate      time.Time              `json:"shift_date"`
	ShiftTime      models.ShiftTime       `json:"shift_time"`
}

// CashEntry is a cash analysis block resolved to a branch. The attendant is
// kept as a name, the same way stored cash reports are.
type CashEntry struct {
	Sheet  string `json:"sheet"`
	Column string `json:"column"`

	BranchID        uint                 `json:"branch_id"`
	AttendantName   string               `json:"attendant_name"`
	PumpNumber      string               `json:"pump_number"`
	ProductType     string               `json:"product_type"`
	Denominations   models.Denominations `json:"denominations"`
	TotalCash       float64              `json:"total_cash"`
	ExpensesClaimed float64              `json:"expenses_claimed"`
	POSClaimed      float64              `json:"pos_claimed"`
	ShiftDate       time.Time            `json:"shift_date"`
	ShiftTime       models.ShiftTime     `json:"shift_time"`
}

// AttendantProposal is a name that matched no attendant of its branch. It
// becomes an attendant only when an apply is explicitly confirmed.
type AttendantProposal struct {
	BranchID uint   `json:"branch_id"`
	Name     string `json:"name"`
	Rows     int    `json:"rows"`
}

type Result struct {
	ShiftRecords []ShiftRecord       `json:"shift_records"`
	CashEntries  []CashEntry         `json:"cash_entries"`
	Skipped      int                 `json:"skipped"`
	Proposals    []AttendantProposal `json:"proposals"`
	Problems     []Problem           `json:"problems"`
}

// NormalizeImportRows resolves branches and attendants and derives the
// numeric fields. Lines that cannot be used are skipped and explained in
// Problems; nothing here fails the batch. Skipped starts from what Extract
// already dropped.
func NormalizeImportRows(batch Batch, branches []models.Branch, attendants []models.Attendant) Result {
	res := Result{
		ShiftRecords: []ShiftRecord{},
		CashEntries:  []CashEntry{},
		Proposals:    []AttendantProposal{},
		Problems:     append([]Problem{}, batch.Problems...),
		Skipped:      batch.Dropped,
	}
	skip := func(sheet string, line int, column, reason string) {
		res.Skipped++
		res.Problems = append(res.Problems, Problem{Sheet: sheet, Line: line, Column: column, Reason: reason})
	}
	proposals := make(map[string]int)

	for _, r := range batch.Rows {
		branch, err := reconcile.ResolveBranch(branches, r.Branch)
		if err != nil {
			skip(r.Sheet, r.Line, "", err.Error())
			continue
		}
		if reason := missingStamp(r.ShiftDate, r.ShiftTime); reason != "" {
			skip(r.Sheet, r.Line, "", reason)
			continue
		}
		if r.Expenses < 0 {
			skip(r.Sheet, r.Line, "", fmt.Sprintf("expenses must not be negative, got %v", r.Expenses))
			continue
		}

		rec := ShiftRecord{
			Sheet:         r.Sheet,
			Line:          r.Line,
			BranchID:      branch.ID,
			PumpProduct:   r.PumpProduct,
			OpeningMeter:  r.OpeningMeter,
			ClosingMeter:  r.ClosingMeter,
			PricePerLiter: r.PricePerLiter,
			CashRemitted:  r.CashRemitted,
			POSRemitted:   r.POSRemitted,
			Expenses:      r.Expenses,
			ExpenseNote:   r.ExpenseNote,
			ShiftDate:     r.ShiftDate,
			ShiftTime:     r.ShiftTime,
		}
		switch {
		case r.HasMeters && r.PricePerLiter > 0:
			vr, err := reconcile.ComputeVariance(reconcile.MeterInput{
				OpeningMeter:  r.OpeningMeter,
				ClosingMeter:  r.ClosingMeter,
				PricePerLiter: r.PricePerLiter,
				CashRemitted:  r.CashRemitted,
				POSRemitted:   r.POSRemitted,
			})
			if err != nil {
				skip(r.Sheet, r.Line, "", err.Error())
				continue
			}
			rec.ExpectedAmount = vr.ExpectedAmount
			rec.Variance = vr.Variance
		case r.HasExpected:
			v, err := reconcile.RemittanceVariance(r.ExpectedAmount, r.CashRemitted, r.POSRemitted)
			if err != nil {
				skip(r.Sheet, r.Line, "", err.Error())
				continue
			}
			rec.ExpectedAmount = r.ExpectedAmount
			rec.Variance = v
		case r.HasMeters:
			skip(r.Sheet, r.Line, "", fmt.Sprintf("no price per liter for %q", r.PumpProduct))
			continue
		default:
			skip(r.Sheet, r.Line, "", "neither meter readings nor an expected amount")
			continue
		}

		rec.Attendant = reconcile.ResolveAttendant(attendants, branch.ID, r.Attendant)
		if !rec.Attendant.IsResolved() {
			key := proposalKey(branch.ID, r.Attendant)
			if i, ok := proposals[key]; ok {
				res.Proposals[i].Rows++
			} else {
				proposals[key] = len(res.Proposals)
				res.Proposals = append(res.Proposals, AttendantProposal{BranchID: branch.ID, Name: rec.Attendant.RawName, Rows: 1})
			}
		}
		res.ShiftRecords = append(res.ShiftRecords, rec)
	}

	for _, c := range batch.Cash {
		branch, err := reconcile.ResolveBranch(branches, c.Branch)
		if err != nil {
			skip(c.Sheet, 0, c.Column, err.Error())
			continue
		}
		if reason := missingStamp(c.ShiftDate, c.ShiftTime); reason != "" {
			skip(c.Sheet, 0, c.Column, reason)
			continue
		}
		total, err := reconcile.TotalizeCash(c.Denominations)
		if err != nil {
			skip(c.Sheet, 0, c.Column, err.Error())
			continue
		}
		if c.DeclaredCash > 0 && c.DeclaredCash != float64(total.Total) {
			res.Problems = append(res.Problems, Problem{
				Sheet:  c.Sheet,
				Column: c.Column,
				Reason: fmt.Sprintf("cash row says %v but the notes add up to %d; using the note total", c.DeclaredCash, total.Total),
			})
		}

		denoms := make(models.Denominations, len(c.Denominations))
		for v, n := range c.Denominations {
			if _, known := total.Subtotals[v]; known {
				denoms[v] = n
			}
		}
		res.CashEntries = append(res.CashEntries, CashEntry{
			Sheet:           c.Sheet,
			Column:          c.Column,
			BranchID:        branch.ID,
			AttendantName:   c.AttendantName,
			PumpNumber:      c.PumpNumber,
			ProductType:     c.ProductType,
			Denominations:   denoms,
			TotalCash:       float64(total.Total),
			ExpensesClaimed: c.Expenses,
			POSClaimed:      c.POS,
			ShiftDate:       c.ShiftDate,
			ShiftTime:       c.ShiftTime,
		})
	}
	return res
}

func missingStamp(date time.Time, t models.ShiftTime) string {
	if date.IsZero() {
		return "no shift date in the row, the sheet title or the upload form"
	}
	if !t.Valid() {
		return "no Morning or Evening shift time in the row, the sheet title or the upload form"
	}
	return ""
}

func proposalKey(branchID uint, name string) string {
	return fmt.Sprintf("%d/%s", branchID, reconcile.NormalizeName(name))
}
