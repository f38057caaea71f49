package reconcile

import (
	"sort"
	"time"

	"fuelstation-backend/internal/models"

	"github.com/shopspring/decimal"
)

// TrendPoint is one day of the variance trend. Claimed estimates the POS an
// attendant owed as whatever expected revenue cash did not cover; it is an
// approximation, not a measured figure. Actual is the POS actually remitted.
type TrendPoint struct {
	Date     string  `json:"date"`
	Variance float64 `json:"variance"`
	Claimed  float64 `json:"claimed"`
	Actual   float64 `json:"actual"`
}

// ComputeTrend groups records by the date of their shift over the trailing
// rangeDays days ending on now's date, both ends included. Points are sorted
// by date ascending; days without records are omitted.
func ComputeTrend(records []models.ShiftData, shifts []models.Shift, rangeDays int, now time.Time) ([]TrendPoint, error) {
	if rangeDays <= 0 {
		return nil, invalid("range_days", "must be positive, got %d", rangeDays)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -(rangeDays - 1)).Format("2006-01-02")
	to := today.Format("2006-01-02")

	dayOf := make(map[uint]string, len(shifts))
	for _, s := range shifts {
		dayOf[s.ID] = s.ShiftDate.Format("2006-01-02")
	}

	type acc struct{ variance, claimed, actual decimal.Decimal }
	days := make(map[string]*acc)
	for _, r := range records {
		day, ok := dayOf[r.ShiftID]
		if !ok || day < from || day > to {
			continue
		}
		a, ok := days[day]
		if !ok {
			a = &acc{}
			days[day] = a
		}
		a.variance = a.variance.Add(dec(RecomputeVariance(r)))
		a.claimed = a.claimed.Add(decimal.Max(decimal.Zero, dec(r.ExpectedAmount).Sub(dec(r.CashRemitted))))
		a.actual = a.actual.Add(dec(r.POSRemitted))
	}

	points := make([]TrendPoint, 0, len(days))
	for day, a := range days {
		points = append(points, TrendPoint{
			Date:     day,
			Variance: a.variance.InexactFloat64(),
			Claimed:  a.claimed.InexactFloat64(),
			Actual:   a.actual.InexactFloat64(),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}
