package models

import "time"

// Attendant belongs to exactly one branch. Names are unique per branch
// ignoring case (see database.Init for the index).
type Attendant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BranchID  uint      `gorm:"index;not null" json:"branch_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
