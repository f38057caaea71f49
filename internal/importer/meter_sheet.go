package importer

import (
	"fmt"
	"strings"
	"time"

	"fuelstation-backend/internal/models"
)

// Header rows are looked for only this far down a sheet.
const headerSearchDepth = 10

// RawRow is one meter-reading line as found in a sheet, before branch and
// attendant resolution.
type RawRow struct {
	Sheet string `json:"sheet"`
	Line  int    `json:"line"`

	Branch      string `json:"branch"`
	Attendant   string `json:"attendant"`
	PumpProduct string `json:"pump_product"`

	OpeningMeter   float64 `json:"opening_meter"`
	ClosingMeter   float64 `json:"closing_meter"`
	PricePerLiter  float64 `json:"price_per_liter"`
	ExpectedAmount float64 `json:"expected_amount"`
	CashRemitted   float64 `json:"cash_remitted"`
	POSRemitted    float64 `json:"pos_remitted"`
	Expenses       float64 `json:"expenses"`
	ExpenseNote    string  `json:"expense_description,omitempty"`

	HasMeters   bool `json:"has_meters"`
	HasExpected bool `json:"has_expected"`
	HasPOS      bool `json:"has_pos"`

	ShiftDate time.Time        `json:"shift_date"`
	ShiftTime models.ShiftTime `json:"shift_time"`
}

// Problem is a line the heuristics could not use.
type Problem struct {
	Sheet  string `json:"sheet"`
	Line   int    `json:"line,omitempty"`
	Column string `json:"column,omitempty"`
	Reason string `json:"reason"`
}

func findHeader(rows [][]string) (int, map[string]int, bool) {
	for r := 0; r < headerSearchDepth && r < len(rows); r++ {
		cols := make(map[string]int)
		for i, c := range rows[r] {
			if name := canonicalHeader(c); name != "" {
				if _, seen := cols[name]; !seen {
					cols[name] = i
				}
			}
		}
		_, hasName := cols[colAttendant]
		_, hasOpen := cols[colOpening]
		_, hasClose := cols[colClosing]
		_, hasExpected := cols[colExpected]
		if hasName && ((hasOpen && hasClose) || hasExpected) {
			return r, cols, true
		}
	}
	return 0, nil, false
}

var totalLabels = map[string]bool{"TOTAL": true, "TOTALS": true, "GRAND TOTAL": true, "SUB TOTAL": true, "SUBTOTAL": true}

// parseMeterSheet reads a tabular sheet: a flat CSV export or the meter
// readings sheet of a workbook. ok is false when no header row is found.
func parseMeterSheet(sh Sheet) (rows []RawRow, problems []Problem, dropped int, ok bool) {
	hdr, cols, ok := findHeader(sh.Rows)
	if !ok {
		return nil, nil, 0, false
	}
	date, st := headerStamp(sh.Rows, hdr)

	section := ""
	for r := hdr + 1; r < len(sh.Rows); r++ {
		row := sh.Rows[r]
		if rowEmpty(row) {
			continue
		}
		if code, isSection := productSection(row); isSection {
			section = code
			continue
		}
		get := func(col string) string {
			i, ok := cols[col]
			if !ok {
				return ""
			}
			return cell(row, i)
		}

		name := get(colAttendant)
		if name == "" || totalLabels[strings.ToUpper(name)] {
			continue
		}

		rr := RawRow{
			Sheet:       sh.Name,
			Line:        r + 1,
			Branch:      get(colBranch),
			Attendant:   name,
			PumpProduct: pumpLabel(section, get(colPump)),
			ExpenseNote: get(colExpenseNote),
			ShiftDate:   date,
			ShiftTime:   st,
		}

		bad := false
		number := func(col string, dst *float64) bool {
			v, present, err := parseAmount(get(col))
			if err != nil {
				problems = append(problems, Problem{Sheet: sh.Name, Line: r + 1, Reason: fmt.Sprintf("%s: %q is not a number", col, get(col))})
				bad = true
				return false
			}
			*dst = v
			return present
		}
		hasOpen := number(colOpening, &rr.OpeningMeter)
		hasClose := number(colClosing, &rr.ClosingMeter)
		number(colPrice, &rr.PricePerLiter)
		rr.HasExpected = number(colExpected, &rr.ExpectedAmount)
		number(colCash, &rr.CashRemitted)
		rr.HasPOS = number(colPOS, &rr.POSRemitted)
		number(colExpenses, &rr.Expenses)
		rr.HasMeters = hasOpen && hasClose

		if s := get(colDate); s != "" {
			d, ok := parseDate(s)
			if !ok {
				problems = append(problems, Problem{Sheet: sh.Name, Line: r + 1, Reason: fmt.Sprintf("unrecognized date %q", s)})
				bad = true
			}
			rr.ShiftDate = d
		}
		if s := get(colTime); s != "" {
			t, ok := parseShiftTime(s)
			if !ok {
				problems = append(problems, Problem{Sheet: sh.Name, Line: r + 1, Reason: fmt.Sprintf("unrecognized shift time %q", s)})
				bad = true
			}
			rr.ShiftTime = t
		}
		if bad {
			dropped++
			continue
		}
		rows = append(rows, rr)
	}
	return rows, problems, dropped, true
}
