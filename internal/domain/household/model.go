package household

import (
	"strings"
	"time"
)

// Sitios is the fixed list of sub-localities a household can belong to.
var Sitios = []string{"CASARATAN", "CABAOANGAN", "TRAMO"}

type Household struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	HouseholdName string `gorm:"not null;index"`
	HouseNo       string
	Street        string
	Sitio         string `gorm:"type:varchar(32)"`
	Landmark      string
	DateAdded     time.Time `gorm:"autoCreateTime"`
}

// Address joins the non-empty location parts the way the record tables
// display them.
func (h Household) Address() string {
	parts := make([]string, 0, 4)
	for _, part := range []string{h.HouseNo, h.Street, h.Sitio, h.Landmark} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " ")
}

func ValidSitio(value string) bool {
	for _, sitio := range Sitios {
		if value == sitio {
			return true
		}
	}
	return false
}
