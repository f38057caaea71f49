package reconcile_test

import (
	"testing"

	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeVariance(t *testing.T) {
	tests := []struct {
		name      string
		in        reconcile.MeterInput
		want      reconcile.VarianceResult
		wantErr   bool
		wantField string
	}{
		{
			name: "shortage on a full shift",
			in:   reconcile.MeterInput{OpeningMeter: 1000, ClosingMeter: 1500, PricePerLiter: 650, CashRemitted: 310000, POSRemitted: 10000},
			want: reconcile.VarianceResult{LitersSold: 500, ExpectedAmount: 325000, Variance: -5000},
		},
		{
			name: "exact remittance",
			in:   reconcile.MeterInput{OpeningMeter: 20, ClosingMeter: 30, PricePerLiter: 100, CashRemitted: 600, POSRemitted: 400},
			want: reconcile.VarianceResult{LitersSold: 10, ExpectedAmount: 1000, Variance: 0},
		},
		{
			name: "fractional liters keep decimal precision",
			in:   reconcile.MeterInput{OpeningMeter: 100.1, ClosingMeter: 100.3, PricePerLiter: 10, CashRemitted: 2},
			want: reconcile.VarianceResult{LitersSold: 0.2, ExpectedAmount: 2, Variance: 0},
		},
		{
			name: "no sales",
			in:   reconcile.MeterInput{OpeningMeter: 500, ClosingMeter: 500, PricePerLiter: 650, CashRemitted: 50},
			want: reconcile.VarianceResult{LitersSold: 0, ExpectedAmount: 0, Variance: 50},
		},
		{
			name:      "closing below opening is rejected",
			in:        reconcile.MeterInput{OpeningMeter: 1500, ClosingMeter: 1000, PricePerLiter: 650},
			wantErr:   true,
			wantField: "closing_meter",
		},
		{
			name:      "zero price is rejected",
			in:        reconcile.MeterInput{OpeningMeter: 1, ClosingMeter: 2},
			wantErr:   true,
			wantField: "price_per_liter",
		},
		{
			name:      "negative cash is rejected",
			in:        reconcile.MeterInput{OpeningMeter: 1, ClosingMeter: 2, PricePerLiter: 1, CashRemitted: -1},
			wantErr:   true,
			wantField: "cash_remitted",
		},
		{
			name:      "negative meter is rejected",
			in:        reconcile.MeterInput{OpeningMeter: -1, ClosingMeter: 2, PricePerLiter: 1},
			wantErr:   true,
			wantField: "opening_meter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reconcile.ComputeVariance(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				var ve *reconcile.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
				assert.True(t, reconcile.IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeVariance_ExpectedIsLitersTimesPrice(t *testing.T) {
	cases := []struct{ opening, closing, price float64 }{
		{0, 1, 1},
		{1000, 1500, 650},
		{12345, 12999, 617},
		{10.5, 20.25, 4},
		{0, 73.5, 897.5},
	}
	for _, c := range cases {
		got, err := reconcile.ComputeVariance(reconcile.MeterInput{OpeningMeter: c.opening, ClosingMeter: c.closing, PricePerLiter: c.price})
		require.NoError(t, err)
		assert.InDelta(t, (c.closing-c.opening)*c.price, got.ExpectedAmount, 1e-9)
		assert.InDelta(t, -got.ExpectedAmount, got.Variance, 1e-9)
	}
}

func TestRecomputeVariance_RoundTrip(t *testing.T) {
	inputs := []reconcile.MeterInput{
		{OpeningMeter: 1000, ClosingMeter: 1500, PricePerLiter: 650, CashRemitted: 310000, POSRemitted: 10000},
		{OpeningMeter: 10.5, ClosingMeter: 20.25, PricePerLiter: 4, CashRemitted: 30.5, POSRemitted: 7.25},
		{OpeningMeter: 0, ClosingMeter: 73.5, PricePerLiter: 897.5, CashRemitted: 66000, POSRemitted: 0},
	}
	for _, in := range inputs {
		res, err := reconcile.ComputeVariance(in)
		require.NoError(t, err)

		stored := models.ShiftData{
			OpeningMeter:   in.OpeningMeter,
			ClosingMeter:   in.ClosingMeter,
			PricePerLiter:  in.PricePerLiter,
			ExpectedAmount: res.ExpectedAmount,
			CashRemitted:   in.CashRemitted,
			POSRemitted:    in.POSRemitted,
			Variance:       res.Variance,
		}
		assert.Equal(t, stored.Variance, reconcile.RecomputeVariance(stored))
	}
}

func TestRemittanceVariance(t *testing.T) {
	v, err := reconcile.RemittanceVariance(200, 190, 5)
	require.NoError(t, err)
	assert.Equal(t, -5.0, v)

	_, err = reconcile.RemittanceVariance(-1, 0, 0)
	assert.True(t, reconcile.IsValidation(err))
}
