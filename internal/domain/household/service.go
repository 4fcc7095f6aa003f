package household

import (
	"context"
	"strings"

	"barangay-records-go/pkg/outcome"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the raw household fields as entered by the caller.
type Input struct {
	HouseholdName string
	HouseNo       string
	Street        string
	Sitio         string
	Landmark      string
}

func (s *Service) Create(ctx context.Context, in Input) (*Household, error) {
	record, err := normalize(in)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		taken, err := tx.NameTaken(ctx, record.HouseholdName, "")
		if err != nil {
			return err
		}
		if taken {
			return outcome.Invalidf("Household name already exists.")
		}

		record.ID = uuid.NewString()
		return tx.Create(ctx, record)
	})
	if err != nil {
		return nil, outcome.Persist(err)
	}

	return record, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Household, error) {
	var result *Household
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		// The load comes first so a stale id reports not-found, not a
		// complaint about the submitted fields.
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		fields, err := normalize(in)
		if err != nil {
			return err
		}

		taken, err := tx.NameTaken(ctx, fields.HouseholdName, existing.ID)
		if err != nil {
			return err
		}
		if taken {
			return outcome.Invalidf("Household name already exists.")
		}

		existing.HouseholdName = fields.HouseholdName
		existing.HouseNo = fields.HouseNo
		existing.Street = fields.Street
		existing.Sitio = fields.Sitio
		existing.Landmark = fields.Landmark

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

		dependents, err := tx.CountResidents(ctx, existing.ID)
		if err != nil {
			return err
		}
		if dependents > 0 {
			return outcome.Invalidf("Household has %d resident(s); reassign or delete them first.", dependents)
		}

		return tx.Delete(ctx, existing.ID)
	})
	return outcome.Persist(err)
}

func (s *Service) Get(ctx context.Context, id string) (*Household, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByName resolves a household from its display name, case-insensitively.
// Resident records reference households this way.
func (s *Service) GetByName(ctx context.Context, name string) (*Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, outcome.ErrNotFound
	}
	return s.repo.GetByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]Household, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]Household, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

func normalize(in Input) (*Household, error) {
	record := &Household{
		HouseholdName: upper(in.HouseholdName),
		HouseNo:       upper(in.HouseNo),
		Street:        upper(in.Street),
		Sitio:         upper(in.Sitio),
		Landmark:      upper(in.Landmark),
	}

	if record.HouseholdName == "" {
		return nil, outcome.Invalidf("Household name cannot be empty.")
	}
	if record.Sitio != "" && !ValidSitio(record.Sitio) {
		return nil, outcome.Invalidf("Unknown sitio %q.", record.Sitio)
	}

	return record, nil
}

func upper(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
