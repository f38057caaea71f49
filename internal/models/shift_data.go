package models

import "time"

// ShiftData is one meter-reading pair for an attendant on a shift together
// with what the attendant remitted against it.
type ShiftData struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ShiftID        uint      `gorm:"index;not null" json:"shift_id"`
	AttendantID    uint      `gorm:"index;not null" json:"attendant_id"`
	PumpProduct    string    `gorm:"size:100" json:"pump_product"`
	OpeningMeter   float64   `gorm:"not null;default:0" json:"opening_meter"`
	ClosingMeter   float64   `gorm:"not null;default:0" json:"closing_meter"`
	PricePerLiter  float64   `gorm:"not null;default:0" json:"price_per_liter"`
	ExpectedAmount float64   `gorm:"not null" json:"expected_amount"`
	CashRemitted   float64   `gorm:"not null;default:0" json:"cash_remitted"`
	POSRemitted    float64   `gorm:"column:pos_remitted;not null;default:0" json:"pos_remitted"`
	ExpensesTotal  float64   `gorm:"not null;default:0" json:"expenses_total"`
	Variance       float64   `gorm:"not null" json:"variance"`
	ImportBatchID  string    `gorm:"size:36;index" json:"import_batch_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Attendant Attendant `json:"-"`
}

func (ShiftData) TableName() string {
	return "shift_data"
}
