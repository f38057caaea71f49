package models

import "time"

// CashAnalysisReport is a physical cash count submitted by an attendant.
// It is linked to the ledger only by branch, attendant name, date and shift
// time; there is no foreign key to shift_data.
type CashAnalysisReport struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	BranchID        uint          `gorm:"index;not null" json:"branch_id"`
	AttendantName   string        `gorm:"size:100;not null" json:"attendant_name"`
	PumpNumber      string        `gorm:"size:50" json:"pump_number"`
	ProductType     string        `gorm:"size:20" json:"product_type"`
	Denominations   Denominations `gorm:"type:jsonb" json:"denominations"`
	TotalCash       float64       `gorm:"not null" json:"total_cash"`
	ExpensesClaimed float64       `gorm:"not null;default:0" json:"expenses_claimed"`
	POSClaimed      float64       `gorm:"column:pos_claimed;not null;default:0" json:"pos_claimed"`
	ShiftDate       time.Time     `gorm:"type:date;index;not null" json:"shift_date"`
	ShiftTime       ShiftTime     `gorm:"size:10;not null" json:"shift_time"`
	ImportBatchID   string        `gorm:"size:36;index" json:"import_batch_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}
