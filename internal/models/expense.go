package models

import "time"

type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "PENDING"
	ExpenseApproved ExpenseStatus = "APPROVED"
	ExpenseRejected ExpenseStatus = "REJECTED"
)

type Expense struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	ShiftDataID   uint          `gorm:"index;not null" json:"shift_data_id"`
	Description   string        `gorm:"size:255" json:"description"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Status        ExpenseStatus `gorm:"size:10;index;not null;default:'PENDING'" json:"status"`
	ReceiptURL    string        `gorm:"size:500" json:"receipt_url,omitempty"`
	DecidedBy     *uint         `json:"decided_by,omitempty"`
	DecidedAt     *time.Time    `json:"decided_at,omitempty"`
	ImportBatchID string        `gorm:"size:36;index" json:"import_batch_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
