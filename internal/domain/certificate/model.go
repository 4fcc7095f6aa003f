package certificate

import (
	"time"

	"barangay-records-go/internal/domain/resident"
)

var Types = []string{"CLEARANCE", "INDIGENCY", "RESIDENCY"}

type Certificate struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	DateIssued time.Time `gorm:"index"`
	Type       string    `gorm:"type:varchar(16)"`
	Purpose    string    `gorm:"not null"`
	ResidentID string    `gorm:"type:uuid;not null;index"`
	DateAdded  time.Time `gorm:"autoCreateTime"`

	Resident resident.Resident `gorm:"foreignKey:ResidentID;references:ID"`
}

func ValidType(value string) bool {
	for _, kind := range Types {
		if value == kind {
			return true
		}
	}
	return false
}
