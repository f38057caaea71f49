package reconcile

import (
	"math"

	"fuelstation-backend/internal/models"

	"github.com/shopspring/decimal"
)

// MeterInput is what an attendant reports for one pump at shift end.
type MeterInput struct {
	OpeningMeter  float64 `json:"opening_meter"`
	ClosingMeter  float64 `json:"closing_meter"`
	PricePerLiter float64 `json:"price_per_liter"`
	CashRemitted  float64 `json:"cash_remitted"`
	POSRemitted   float64 `json:"pos_remitted"`
}

type VarianceResult struct {
	LitersSold     float64 `json:"liters_sold"`
	ExpectedAmount float64 `json:"expected_amount"`
	Variance       float64 `json:"variance"`
}

// ComputeVariance turns meter readings and remittances into liters sold,
// expected revenue and variance. A closing reading below the opening one is
// rejected rather than clamped.
func ComputeVariance(in MeterInput) (VarianceResult, error) {
	if err := nonNegative("opening_meter", in.OpeningMeter); err != nil {
		return VarianceResult{}, err
	}
	if err := nonNegative("closing_meter", in.ClosingMeter); err != nil {
		return VarianceResult{}, err
	}
	if err := nonNegative("cash_remitted", in.CashRemitted); err != nil {
		return VarianceResult{}, err
	}
	if err := nonNegative("pos_remitted", in.POSRemitted); err != nil {
		return VarianceResult{}, err
	}
	if !(in.PricePerLiter > 0) || math.IsInf(in.PricePerLiter, 0) {
		return VarianceResult{}, invalid("price_per_liter", "must be greater than zero, got %v", in.PricePerLiter)
	}
	if in.ClosingMeter < in.OpeningMeter {
		return VarianceResult{}, invalid("closing_meter", "closing reading %v is below opening reading %v", in.ClosingMeter, in.OpeningMeter)
	}

	liters := decimal.Max(decimal.Zero, dec(in.ClosingMeter).Sub(dec(in.OpeningMeter)))
	expected := liters.Mul(dec(in.PricePerLiter))
	variance := dec(in.CashRemitted).Add(dec(in.POSRemitted)).Sub(expected)

	return VarianceResult{
		LitersSold:     liters.InexactFloat64(),
		ExpectedAmount: expected.InexactFloat64(),
		Variance:       variance.InexactFloat64(),
	}, nil
}

// RemittanceVariance is the variance for rows whose expected amount is
// supplied directly instead of being derived from meters.
func RemittanceVariance(expected, cash, pos float64) (float64, error) {
	if err := nonNegative("expected_amount", expected); err != nil {
		return 0, err
	}
	if err := nonNegative("cash_remitted", cash); err != nil {
		return 0, err
	}
	if err := nonNegative("pos_remitted", pos); err != nil {
		return 0, err
	}
	return dec(cash).Add(dec(pos)).Sub(dec(expected)).InexactFloat64(), nil
}

// RecomputeVariance derives the variance from a stored record's fields.
// For any record written through ComputeVariance or RemittanceVariance it
// equals the stored Variance.
func RecomputeVariance(rec models.ShiftData) float64 {
	return dec(rec.CashRemitted).Add(dec(rec.POSRemitted)).Sub(dec(rec.ExpectedAmount)).InexactFloat64()
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, "must not be negative, got %v", v)
	}
	return nil
}

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
