package importer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fuelstation-backend/internal/models"
)

// Canonical column names for tabular sheets.
const (
	colBranch      = "branch"
	colAttendant   = "attendant"
	colPump        = "pump_product"
	colOpening     = "opening_meter"
	colClosing     = "closing_meter"
	colPrice       = "price_per_liter"
	colExpected    = "expected_amount"
	colCash        = "cash_remitted"
	colPOS         = "pos_remitted"
	colDate        = "shift_date"
	colTime        = "shift_time"
	colExpenses    = "expenses"
	colExpenseNote = "expense_description"
)

var headerAliases = map[string]string{
	"branch": colBranch, "branchid": colBranch, "branchname": colBranch, "station": colBranch, "outlet": colBranch,

	"attendant": colAttendant, "attendantname": colAttendant, "name": colAttendant, "staff": colAttendant,
	"staffname": colAttendant, "pumpattendant": colAttendant,

	"pump": colPump, "pumpproduct": colPump, "product": colPump, "pumpno": colPump, "pumpnumber": colPump,
	"nozzle": colPump,

	"opening": colOpening, "openingmeter": colOpening, "openingreading": colOpening, "open": colOpening,
	"closing": colClosing, "closingmeter": colClosing, "closingreading": colClosing, "close": colClosing,

	"price": colPrice, "priceperliter": colPrice, "pricelitre": colPrice, "priceperlitre": colPrice,
	"unitprice": colPrice, "rate": colPrice,

	"expected": colExpected, "expectedamount": colExpected, "amount": colExpected, "sales": colExpected,
	"totalsales": colExpected,

	"cash": colCash, "cashremitted": colCash, "cashremittance": colCash,
	"pos": colPOS, "posremitted": colPOS, "posamount": colPOS, "card": colPOS,

	"date": colDate, "shiftdate": colDate,
	"time": colTime, "shift": colTime, "shifttime": colTime, "period": colTime,

	"expense": colExpenses, "expenses": colExpenses, "expenseamount": colExpenses,
	"expensedescription": colExpenseNote, "expensenote": colExpenseNote, "description": colExpenseNote,
}

var headerNoise = regexp.MustCompile(`[^a-z]`)

// canonicalHeader maps a header cell to a canonical column, ignoring case,
// spaces, underscores and punctuation. Unknown headers map to "".
func canonicalHeader(s string) string {
	return headerAliases[headerNoise.ReplaceAllString(strings.ToLower(s), "")]
}

// cell never panics on short rows.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseAmount reads a money or meter cell. ok is false for blank cells.
func parseAmount(s string) (v float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, false, nil
	}
	s = strings.NewReplacer(",", "", "₦", "", " ", "").Replace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + strings.Trim(s, "()")
	}
	v, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false, fmt.Errorf("%q is not a finite number", s)
	}
	return v, true, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"2-Jan-06",
	"Jan 2, 2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseShiftTime(s string) (models.ShiftTime, bool) {
	l := strings.ToLower(s)
	switch {
	case strings.Contains(l, "morn"):
		return models.ShiftMorning, true
	case strings.Contains(l, "even"), strings.Contains(l, "night"):
		return models.ShiftEvening, true
	}
	return "", false
}

var embeddedDate = regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}|\d{1,2}[/.-]\d{1,2}[/.-]\d{4}|\d{1,2}[ -][A-Za-z]{3}[ -]\d{2,4}`)

// headerStamp finds a title cell such as "CASH ANALYSIS 14/03/2025 MORNING"
// within the first rows and returns whatever date and shift time it names.
func headerStamp(rows [][]string, depth int) (time.Time, models.ShiftTime) {
	var date time.Time
	var st models.ShiftTime
	for r := 0; r < depth && r < len(rows); r++ {
		for _, c := range rows[r] {
			if date.IsZero() {
				if m := embeddedDate.FindString(c); m != "" {
					if d, ok := parseDate(m); ok {
						date = d
					}
				}
			}
			if st == "" && len(c) <= 60 {
				if t, ok := parseShiftTime(c); ok {
					st = t
				}
			}
		}
	}
	return date, st
}

var productCodes = map[string]bool{"PMS": true, "AGO": true, "DPK": true, "LPG": true}

// productSection reports whether row is a section label such as "PMS" or
// "AGO PUMPS" with nothing else on the line.
func productSection(row []string) (string, bool) {
	first := ""
	for i, c := range row {
		if strings.TrimSpace(c) == "" {
			continue
		}
		if first != "" || i > 1 {
			return "", false
		}
		first = strings.TrimSpace(c)
	}
	if first == "" {
		return "", false
	}
	code := strings.ToUpper(strings.Fields(first)[0])
	if !productCodes[code] {
		return "", false
	}
	return code, true
}

// pumpLabel prefixes a bare pump label with the section's product code.
func pumpLabel(section, label string) string {
	label = strings.TrimSpace(label)
	if section == "" {
		return label
	}
	if label == "" {
		return section
	}
	if strings.HasPrefix(strings.ToUpper(label), section) {
		return label
	}
	return section + " - " + label
}
