package resident

import (
	"context"
	"errors"
	"strings"
	"time"

	"barangay-records-go/internal/domain/household"
	"barangay-records-go/pkg/outcome"
	"github.com/google/uuid"
)

// Households resolves the household display name supplied by callers to a
// stored household record.
type Households interface {
	GetByName(ctx context.Context, name string) (*household.Household, error)
}

type Service struct {
	repo       Repository
	households Households
}

func NewService(repo Repository, households Households) *Service {
	return &Service{repo: repo, households: households}
}

// Input carries the raw resident fields. The household is referenced by
// its display name, as the record forms present it.
type Input struct {
	FirstName     string
	LastName      string
	MiddleName    string
	Suffix        string
	DateOfBirth   *time.Time
	Occupation    string
	CivilStatus   string
	Citizenship   string
	Sex           string
	Education     string
	Remarks       string
	Phone1        string
	Phone2        string
	Email         string
	Role          string
	HouseholdName string
}

func (s *Service) Create(ctx context.Context, in Input) (*Resident, error) {
	record, err := s.normalize(ctx, in)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		taken, err := tx.IdentityTaken(ctx, record.FirstName, record.LastName, record.MiddleName, record.Suffix, "")
		if err != nil {
			return err
		}
		if taken {
			return outcome.Invalidf("Resident already exists.")
		}

		record.ID = uuid.NewString()
		return tx.Create(ctx, record)
	})
	if err != nil {
		return nil, outcome.Persist(err)
	}

	return record, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Resident, error) {
	var result *Resident
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		// Load before validating: a stale id is not-found, whatever the
		// submitted fields look like.
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		fields, err := s.normalize(ctx, in)
		if err != nil {
			return err
		}

		taken, err := tx.IdentityTaken(ctx, fields.FirstName, fields.LastName, fields.MiddleName, fields.Suffix, existing.ID)
		if err != nil {
			return err
		}
		if taken {
			return outcome.Invalidf("Resident already exists.")
		}

		existing.FirstName = fields.FirstName
		existing.LastName = fields.LastName
		existing.MiddleName = fields.MiddleName
		existing.Suffix = fields.Suffix
		existing.DateOfBirth = fields.DateOfBirth
		existing.Occupation = fields.Occupation
		existing.CivilStatus = fields.CivilStatus
		existing.Citizenship = fields.Citizenship
		existing.Sex = fields.Sex
		existing.Education = fields.Education
		existing.Remarks = fields.Remarks
		existing.Phone1 = fields.Phone1
		existing.Phone2 = fields.Phone2
		existing.Email = fields.Email
		existing.Role = fields.Role
		existing.HouseholdID = fields.HouseholdID
		existing.Household = fields.Household

		if err := tx.Update(ctx, existing); err != nil {
			return err
		}

		result = existing
		return nil
	})
	if err != nil {
		return nil, outcome.Persist(err)
	}

	return result, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		accounts, err := tx.CountUsers(ctx, existing.ID)
		if err != nil {
			return err
		}
		if accounts > 0 {
			return outcome.Invalidf("Resident has a user account; delete it first.")
		}

		certificates, err := tx.CountCertificates(ctx, existing.ID)
		if err != nil {
			return err
		}
		if certificates > 0 {
			return outcome.Invalidf("Resident has %d certificate(s); delete them first.", certificates)
		}

		return tx.Delete(ctx, existing.ID)
	})
	return outcome.Persist(err)
}

func (s *Service) Get(ctx context.Context, id string) (*Resident, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Resident, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]Resident, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) normalize(ctx context.Context, in Input) (*Resident, error) {
	record := &Resident{
		FirstName:   upper(in.FirstName),
		LastName:    upper(in.LastName),
		MiddleName:  upper(in.MiddleName),
		Suffix:      upper(in.Suffix),
		DateOfBirth: in.DateOfBirth,
		Occupation:  upper(in.Occupation),
		CivilStatus: upper(in.CivilStatus),
		Citizenship: upper(in.Citizenship),
		Sex:         upper(in.Sex),
		Education:   upper(in.Education),
		Remarks:     upper(in.Remarks),
		Phone1:      upper(in.Phone1),
		Phone2:      upper(in.Phone2),
		// Email is stored case-as-entered.
		Email: strings.TrimSpace(in.Email),
		Role:  upper(in.Role),
	}

	if record.FirstName == "" {
		return nil, outcome.Invalidf("First name cannot be empty.")
	}
	if record.LastName == "" {
		return nil, outcome.Invalidf("Last name cannot be empty.")
	}
	if record.Citizenship == "" {
		return nil, outcome.Invalidf("Citizenship cannot be empty.")
	}
	if record.CivilStatus != "" && !contains(CivilStatuses, record.CivilStatus) {
		return nil, outcome.Invalidf("Unknown civil status %q.", record.CivilStatus)
	}
	if record.Sex != "" && !contains(Sexes, record.Sex) {
		return nil, outcome.Invalidf("Unknown sex %q.", record.Sex)
	}
	if record.Education != "" && !contains(Educations, record.Education) {
		return nil, outcome.Invalidf("Unknown education %q.", record.Education)
	}
	if record.Role != "" && !contains(Roles, record.Role) {
		return nil, outcome.Invalidf("Unknown role %q.", record.Role)
	}

	name := strings.TrimSpace(in.HouseholdName)
	if name == "" {
		return nil, outcome.Invalidf("Please select a household.")
	}
	owner, err := s.households.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, outcome.ErrNotFound) {
			return nil, outcome.Invalidf("No matching household found for %q.", name)
		}
		return nil, outcome.Persist(err)
	}
	record.HouseholdID = owner.ID
	record.Household = *owner

	return record, nil
}

func upper(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
