package resident

import (
	"strings"
	"time"

	"barangay-records-go/internal/domain/household"
)

var (
	CivilStatuses = []string{"SINGLE", "MARRIED", "DIVORCED", "SEPARATED", "WIDOWED"}
	Sexes         = []string{"MALE", "FEMALE", "OTHER"}
	Roles         = []string{"HEAD", "SPOUSE", "CHILD"}
	Educations    = []string{
		"SOME ELEMENTARY",
		"ELEMENTARY GRADUATE",
		"SOME HIGH SCHOOL",
		"HIGH SCHOOL GRADUATE",
		"SOME COLLEGE/VOCATIONAL",
		"COLLEGE GRADUATE",
		"SOME/COMPLETED MASTER'S DEGREE",
		"MASTERS GRADUATE",
		"VOCATIONAL/TVET",
	}
)

type Resident struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	FirstName   string `gorm:"not null"`
	LastName    string `gorm:"not null;index"`
	MiddleName  string
	Suffix      string
	DateOfBirth *time.Time
	Occupation  string
	CivilStatus string `gorm:"type:varchar(16)"`
	Citizenship string `gorm:"not null"`
	Sex         string `gorm:"type:varchar(8)"`
	Education   string
	Remarks     string
	Phone1      string
	Phone2      string
	Email       string
	Role        string    `gorm:"type:varchar(8)"`
	HouseholdID string    `gorm:"type:uuid;not null;index"`
	DateAdded   time.Time `gorm:"autoCreateTime"`

	Household household.Household `gorm:"foreignKey:HouseholdID;references:ID"`
}

// FullName renders "LAST, FIRST MIDDLE SUFFIX", skipping empty parts.
func (r Resident) FullName() string {
	given := make([]string, 0, 3)
	for _, part := range []string{r.FirstName, r.MiddleName, r.Suffix} {
		if part != "" {
			given = append(given, part)
		}
	}
	return strings.TrimSpace(r.LastName + ", " + strings.Join(given, " "))
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
