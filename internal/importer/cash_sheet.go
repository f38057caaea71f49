package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"

	"github.com/xuri/excelize/v2"
)

// blockWidth is the number of columns each attendant occupies on a cash
// analysis sheet: note count, amount, and a spare column.
const blockWidth = 3

// RawCash is one attendant block of a cash analysis sheet.
type RawCash struct {
	Sheet  string `json:"sheet"`
	Column string `json:"column"`

	Branch        string           `json:"branch"`
	AttendantName string           `json:"attendant_name"`
	PumpNumber    string           `json:"pump_number"`
	ProductType   string           `json:"product_type"`
	Denominations map[int]int      `json:"denominations"`
	DeclaredCash  float64          `json:"declared_cash"`
	POS           float64          `json:"pos"`
	Expenses      float64          `json:"expenses"`
	ShiftDate     time.Time        `json:"shift_date"`
	ShiftTime     models.ShiftTime `json:"shift_time"`

	col     int
	invalid bool
}

var nameLabels = map[string]bool{"NAME": true, "NAMES": true, "ATTENDANT": true, "ATTENDANTS": true, "ATTENDANT NAME": true}

func findNameRow(rows [][]string) int {
	for r := 0; r < headerSearchDepth && r < len(rows); r++ {
		if !nameLabels[strings.ToUpper(cell(rows[r], 0))] {
			continue
		}
		for c := 1; c < len(rows[r]); c++ {
			if cell(rows[r], c) != "" {
				return r
			}
		}
	}
	return -1
}

// denominationLabel reads first-column labels such as "1000", "N500",
// "₦1,000" or "200 x".
func denominationLabel(label string) (int, bool) {
	s := strings.ToUpper(label)
	s = strings.NewReplacer("₦", "", "NGN", "", "N", "", "X", "", ",", "", " ", "").Replace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	for _, d := range reconcile.Denominations {
		if d == v {
			return v, true
		}
	}
	return 0, false
}

// parseCashSheet reads per-attendant denomination blocks. ok is false unless
// the sheet has both a name row and at least one denomination row; a short or
// reordered sheet therefore yields nothing instead of failing.
func parseCashSheet(sh Sheet) (entries []RawCash, problems []Problem, dropped int, ok bool) {
	nameRow := findNameRow(sh.Rows)
	if nameRow < 0 {
		return nil, nil, 0, false
	}
	date, st := headerStamp(sh.Rows, nameRow)

	var blocks []*RawCash
	names := sh.Rows[nameRow]
	for c := 1; c < len(names); c++ {
		name := cell(names, c)
		if name == "" {
			continue
		}
		colName, _ := excelize.ColumnNumberToName(c + 1)
		blocks = append(blocks, &RawCash{
			Sheet:         sh.Name,
			Column:        colName,
			AttendantName: name,
			Denominations: map[int]int{},
			ShiftDate:     date,
			ShiftTime:     st,
			col:           c,
		})
		c += blockWidth - 1
	}

	// value prefers the amount column of a block and falls back to the
	// count column for sheets that only fill one.
	value := func(row []string, b *RawCash, line int, label string) float64 {
		for _, i := range []int{b.col + 1, b.col} {
			v, present, err := parseAmount(cell(row, i))
			if err != nil {
				problems = append(problems, Problem{Sheet: sh.Name, Line: line, Column: b.Column, Reason: fmt.Sprintf("%s: %q is not a number", label, cell(row, i))})
				b.invalid = true
				return 0
			}
			if present {
				return v
			}
		}
		return 0
	}

	section := ""
	found := false
	for r, row := range sh.Rows {
		if r == nameRow || rowEmpty(row) {
			continue
		}
		line := r + 1
		label := strings.ToUpper(cell(row, 0))

		if d, isDenom := denominationLabel(label); isDenom {
			found = true
			for _, b := range blocks {
				count, err := noteCount(cell(row, b.col), cell(row, b.col+1), d)
				if err != nil {
					problems = append(problems, Problem{Sheet: sh.Name, Line: line, Column: b.Column, Reason: fmt.Sprintf("%d notes: %v", d, err)})
					b.invalid = true
					continue
				}
				if count > 0 {
					b.Denominations[d] += count
				}
			}
			continue
		}
		if code, isSection := productSection(row); isSection {
			section = code
			continue
		}

		switch {
		case label == "PRODUCT" || label == "PRODUCT TYPE":
			for _, b := range blocks {
				b.ProductType = strings.ToUpper(cell(row, b.col))
			}
		case strings.HasPrefix(label, "PUMP"):
			for _, b := range blocks {
				b.PumpNumber = cell(row, b.col)
			}
		case label == "CASH" || label == "TOTAL CASH" || label == "CASH TOTAL":
			for _, b := range blocks {
				b.DeclaredCash = value(row, b, line, "cash")
			}
		case label == "POS" || label == "POS TOTAL" || label == "TOTAL POS":
			for _, b := range blocks {
				b.POS = value(row, b, line, "pos")
			}
		case strings.Contains(label, "EXPENSE"):
			for _, b := range blocks {
				b.Expenses = value(row, b, line, "expenses")
			}
		}
	}
	if !found {
		return nil, nil, 0, false
	}

	for _, b := range blocks {
		if b.invalid {
			dropped++
			continue
		}
		if b.ProductType == "" {
			b.ProductType = section
		}
		entries = append(entries, *b)
	}
	return entries, problems, dropped, true
}

// noteCount reads the count column, or derives the count from the amount
// column when only that is filled.
func noteCount(countCell, amountCell string, denom int) (int, error) {
	n, present, err := parseAmount(countCell)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", countCell)
	}
	if !present {
		amount, present, err := parseAmount(amountCell)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", amountCell)
		}
		if !present {
			return 0, nil
		}
		n = amount / float64(denom)
	}
	if n < 0 {
		return 0, fmt.Errorf("count must not be negative, got %v", n)
	}
	if n != math.Trunc(n) {
		return 0, fmt.Errorf("count must be a whole number, got %v", n)
	}
	if n > reconcile.MaxNoteCount {
		return 0, fmt.Errorf("count must not exceed %d, got %v", reconcile.MaxNoteCount, n)
	}
	return int(n), nil
}
