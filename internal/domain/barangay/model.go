package barangay

import "time"

// Barangay holds the single configuration record describing the barangay
// itself. The table is expected to contain at most one row.
type Barangay struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	History   string    `json:"history"`
	Mission   string    `json:"mission"`
	Vision    string    `json:"vision"`
	DateAdded time.Time `gorm:"autoCreateTime" json:"date_added"`
}
