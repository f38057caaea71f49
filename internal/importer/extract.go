package importer

import (
	"fmt"
	"time"

	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"
)

const (
	SheetMeter        = "meter"
	SheetCash         = "cash"
	SheetUnrecognized = "unrecognized"
)

// Options carries what the uploader states about the file. Values found in
// the sheets themselves take precedence.
type Options struct {
	Branch    string
	ShiftDate time.Time
	ShiftTime models.ShiftTime
}

type SheetSummary struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Entries int    `json:"entries"`
}

// Batch is everything the heuristics pulled out of one upload.
type Batch struct {
	Rows     []RawRow       `json:"rows"`
	Cash     []RawCash      `json:"cash"`
	Problems []Problem      `json:"problems"`
	Sheets   []SheetSummary `json:"sheets"`
	// Dropped counts lines and cash blocks discarded for unreadable cells.
	Dropped int `json:"dropped"`
}

// Extract runs the layout heuristics over every sheet of wb. Only a failure
// to read the file is an error; unusable sheets and lines become Problems.
func Extract(wb Workbook, opts Options) (Batch, error) {
	sheets, err := wb.Sheets()
	if err != nil {
		return Batch{}, err
	}

	var b Batch
	for _, sh := range sheets {
		if cash, problems, dropped, ok := parseCashSheet(sh); ok {
			b.Cash = append(b.Cash, cash...)
			b.Problems = append(b.Problems, problems...)
			b.Dropped += dropped
			b.Sheets = append(b.Sheets, SheetSummary{Name: sh.Name, Kind: SheetCash, Entries: len(cash)})
			continue
		}
		if rows, problems, dropped, ok := parseMeterSheet(sh); ok {
			b.Rows = append(b.Rows, rows...)
			b.Problems = append(b.Problems, problems...)
			b.Dropped += dropped
			b.Sheets = append(b.Sheets, SheetSummary{Name: sh.Name, Kind: SheetMeter, Entries: len(rows)})
			continue
		}
		b.Sheets = append(b.Sheets, SheetSummary{Name: sh.Name, Kind: SheetUnrecognized})
		if !sheetEmpty(sh) {
			b.Problems = append(b.Problems, Problem{Sheet: sh.Name, Reason: "no meter readings header or cash analysis blocks found"})
		}
	}

	b.fillDefaults(opts)
	b.attachPOS()
	return b, nil
}

// FillPrices sets a price on meter rows that have readings but no price.
func (b *Batch) FillPrices(prices PriceLookup) {
	if prices == nil {
		return
	}
	for i := range b.Rows {
		r := &b.Rows[i]
		if !r.HasMeters || r.PricePerLiter > 0 {
			continue
		}
		if p, ok := prices.PriceFor(r.PumpProduct); ok {
			r.PricePerLiter = p
		}
	}
}

// fillDefaults completes branch, date and shift time: the row's own value,
// then the uploader's, then a date or time stamped on any sheet of the
// workbook. The cash sheet title usually carries the date for the whole file.
func (b *Batch) fillDefaults(opts Options) {
	var stampDate time.Time
	var stampTime models.ShiftTime
	for _, c := range b.Cash {
		if stampDate.IsZero() {
			stampDate = c.ShiftDate
		}
		if stampTime == "" {
			stampTime = c.ShiftTime
		}
	}
	for _, r := range b.Rows {
		if stampDate.IsZero() {
			stampDate = r.ShiftDate
		}
		if stampTime == "" {
			stampTime = r.ShiftTime
		}
	}

	date := func(own time.Time) time.Time {
		switch {
		case !own.IsZero():
			return own
		case !opts.ShiftDate.IsZero():
			return opts.ShiftDate
		}
		return stampDate
	}
	shiftTime := func(own models.ShiftTime) models.ShiftTime {
		switch {
		case own != "":
			return own
		case opts.ShiftTime != "":
			return opts.ShiftTime
		}
		return stampTime
	}

	for i := range b.Rows {
		r := &b.Rows[i]
		if r.Branch == "" {
			r.Branch = opts.Branch
		}
		r.ShiftDate = date(r.ShiftDate)
		r.ShiftTime = shiftTime(r.ShiftTime)
	}
	for i := range b.Cash {
		c := &b.Cash[i]
		if c.Branch == "" {
			c.Branch = opts.Branch
		}
		c.ShiftDate = date(c.ShiftDate)
		c.ShiftTime = shiftTime(c.ShiftTime)
	}
}

// attachPOS copies each cash block's POS figure onto the first meter row of
// the same attendant, branch, date and shift time that has no POS of its own.
func (b *Batch) attachPOS() {
	for _, c := range b.Cash {
		if c.POS <= 0 {
			continue
		}
		for i := range b.Rows {
			r := &b.Rows[i]
			if r.HasPOS || !samePerson(r, c) {
				continue
			}
			r.POSRemitted = c.POS
			r.HasPOS = true
			break
		}
	}
}

func samePerson(r *RawRow, c RawCash) bool {
	return reconcile.NormalizeName(r.Attendant) == reconcile.NormalizeName(c.AttendantName) &&
		reconcile.NormalizeName(r.Branch) == reconcile.NormalizeName(c.Branch) &&
		r.ShiftDate.Equal(c.ShiftDate) &&
		r.ShiftTime == c.ShiftTime
}

func sheetEmpty(sh Sheet) bool {
	for _, row := range sh.Rows {
		if !rowEmpty(row) {
			return false
		}
	}
	return true
}

func (p Problem) String() string {
	loc := p.Sheet
	if p.Line > 0 {
		loc = fmt.Sprintf("%s line %d", loc, p.Line)
	}
	if p.Column != "" {
		loc = fmt.Sprintf("%s column %s", loc, p.Column)
	}
	return loc + ": " + p.Reason
}
