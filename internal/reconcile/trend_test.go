package reconcile_test

import (
	"testing"
	"time"

	"fuelstation-backend/internal/models"
	"fuelstation-backend/internal/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTrend(t *testing.T) {
	now := time.Date(2025, 3, 14, 17, 30, 0, 0, time.UTC)
	shifts := []models.Shift{
		{ID: 1, ShiftDate: day(14)},
		{ID: 2, ShiftDate: day(12)},
		{ID: 3, ShiftDate: day(8)}, // first day of a 7-day window
		{ID: 4, ShiftDate: day(7)}, // outside
		{ID: 5, ShiftDate: day(15)}, // future
	}
	records := []models.ShiftData{
		{ShiftID: 1, ExpectedAmount: 1000, CashRemitted: 500, POSRemitted: 0},
		{ShiftID: 1, ExpectedAmount: 300, CashRemitted: 400, POSRemitted: 100},
		{ShiftID: 2, ExpectedAmount: 100, CashRemitted: 50, POSRemitted: 40},
		{ShiftID: 3, ExpectedAmount: 10, CashRemitted: 10},
		{ShiftID: 4, ExpectedAmount: 10},
		{ShiftID: 5, ExpectedAmount: 10},
		{ShiftID: 99, ExpectedAmount: 10},
	}

	got, err := reconcile.ComputeTrend(records, shifts, 7, now)
	require.NoError(t, err)
	assert.Equal(t, []reconcile.TrendPoint{
		{Date: "2025-03-08", Variance: 0, Claimed: 0, Actual: 0},
		{Date: "2025-03-12", Variance: -10, Claimed: 50, Actual: 40},
		{Date: "2025-03-14", Variance: -300, Claimed: 500, Actual: 100},
	}, got)
}

func TestComputeTrend_SameDayRollsUp(t *testing.T) {
	now := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	shifts := []models.Shift{
		{ID: 1, ShiftDate: day(13), ShiftTime: models.ShiftMorning},
		{ID: 2, ShiftDate: day(13), ShiftTime: models.ShiftEvening},
	}
	records := []models.ShiftData{
		{ShiftID: 1, ExpectedAmount: 1500, CashRemitted: 1000},
		{ShiftID: 2, ExpectedAmount: 800, CashRemitted: 1000},
	}

	got, err := reconcile.ComputeTrend(records, shifts, 30, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-03-13", got[0].Date)
	assert.Equal(t, -300.0, got[0].Variance)
}

func TestComputeTrend_RejectsEmptyRange(t *testing.T) {
	_, err := reconcile.ComputeTrend(nil, nil, 0, time.Now())
	assert.True(t, reconcile.IsValidation(err))
}
