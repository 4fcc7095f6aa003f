package certificate

import (
	"context"
	"errors"
	"strings"
	"time"

	"barangay-records-go/internal/domain/resident"
	"barangay-records-go/pkg/outcome"
	"github.com/google/uuid"
)

// Residents confirms the referenced resident exists before a certificate
// is issued against them.
type Residents interface {
	Get(ctx context.Context, id string) (*resident.Resident, error)
}

type Service struct {
	repo      Repository
	residents Residents
	now       func() time.Time
}

func NewService(repo Repository, residents Residents) *Service {
	return &Service{repo: repo, residents: residents, now: time.Now}
}

type Input struct {
	DateIssued *time.Time
	Type       string
	Purpose    string
	ResidentID string
}

func (s *Service) Create(ctx context.Context, in Input) (*Certificate, error) {
	record, err := s.normalize(ctx, in)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		record.ID = uuid.NewString()
		return tx.Create(ctx, record)
	})
	if err != nil {
		return nil, outcome.Persist(err)
	}

	return record, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*Certificate, error) {
	var result *Certificate
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		// Load before validating so a stale id reports not-found.
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		fields, err := s.normalize(ctx, in)
		if err != nil {
			return err
		}

		existing.DateIssued = fields.DateIssued
		existing.Type = fields.Type
		existing.Purpose = fields.Purpose
		existing.ResidentID = fields.ResidentID
		existing.Resident = fields.Resident

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
		return tx.Delete(ctx, existing.ID)
	})
	return outcome.Persist(err)
}

func (s *Service) Get(ctx context.Context, id string) (*Certificate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Certificate, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]Certificate, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) normalize(ctx context.Context, in Input) (*Certificate, error) {
	record := &Certificate{
		Type:    strings.ToUpper(strings.TrimSpace(in.Type)),
		Purpose: strings.ToUpper(strings.TrimSpace(in.Purpose)),
	}

	if in.DateIssued != nil {
		record.DateIssued = *in.DateIssued
	} else {
		record.DateIssued = s.now()
	}

	if record.Purpose == "" {
		return nil, outcome.Invalidf("Purpose cannot be empty.")
	}
	if record.Type != "" && !ValidType(record.Type) {
		return nil, outcome.Invalidf("Unknown certificate type %q.", record.Type)
	}

	residentID := strings.TrimSpace(in.ResidentID)
	if residentID == "" {
		return nil, outcome.Invalidf("Please select a resident.")
	}
	owner, err := s.residents.Get(ctx, residentID)
	if err != nil {
		if errors.Is(err, outcome.ErrNotFound) {
			return nil, outcome.Invalidf("Selected resident does not exist.")
		}
		return nil, outcome.Persist(err)
	}
	record.ResidentID = owner.ID
	record.Resident = *owner

	return record, nil
}
