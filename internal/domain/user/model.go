package user

import (
	"time"

	"barangay-records-go/internal/domain/resident"
)

var Positions = []string{"CAPTAIN", "SECRETARY", "TREASURER", "KAGAWAD", "TANOD"}

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;size:60;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Position     string    `gorm:"type:varchar(16)"`
	ResidentID   string    `gorm:"type:uuid;not null;uniqueIndex"`
	DateAdded    time.Time `gorm:"autoCreateTime"`

	Resident resident.Resident `gorm:"foreignKey:ResidentID;references:ID"`
}

func ValidPosition(value string) bool {
	for _, position := range Positions {
		if value == position {
			return true
		}
	}
	return false
}
