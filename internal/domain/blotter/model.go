package blotter

import "time"

var Statuses = []string{"OPEN", "ONGOING", "CLOSED"}

// Blotter logs a reported dispute. Complainant and respondent are free
// text, not resident references: parties to a dispute need not be
// registered residents.
type Blotter struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	RecordDate      time.Time `gorm:"index"`
	Status          string    `gorm:"type:varchar(16)"`
	ActionTaken     string
	NatureOfDispute string    `gorm:"not null"`
	Complainant     string    `gorm:"not null"`
	Respondent      string    `gorm:"not null"`
	FullReport      string    `gorm:"not null"`
	DateAdded       time.Time `gorm:"autoCreateTime"`
}

func ValidStatus(value string) bool {
	for _, status := range Statuses {
		if value == status {
			return true
		}
	}
	return false
}
