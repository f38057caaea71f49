package models

import "time"

type ShiftTime string

const (
	ShiftMorning ShiftTime = "Morning"
	ShiftEvening ShiftTime = "Evening"
)

func (t ShiftTime) Valid() bool {
	return t == ShiftMorning || t == ShiftEvening
}

type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "OPEN"
	ShiftClosed ShiftStatus = "CLOSED"
)

type Shift struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	BranchID    uint        `gorm:"index;not null" json:"branch_id"`
	ShiftDate   time.Time   `gorm:"type:date;index;not null" json:"shift_date"`
	ShiftTime   ShiftTime   `gorm:"size:10;not null" json:"shift_time"`
	Status      ShiftStatus `gorm:"size:10;not null;default:'OPEN'" json:"status"`
	GMSignedOff bool        `gorm:"default:false" json:"gm_signed_off"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
