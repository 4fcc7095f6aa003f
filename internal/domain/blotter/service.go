package blotter

import (
	"context"
	"strings"
	"time"

	"barangay-records-go/pkg/outcome"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type Input struct {
	RecordDate      *time.Time
	Status          string
	ActionTaken     string
	NatureOfDispute string
	Complainant     string
	Respondent      string
	FullReport      string
}

func (s *Service) Create(ctx context.Context, in Input) (*Blotter, error) {
	record, err := s.normalize(in)
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

func (s *Service) Update(ctx context.Context, id string, in Input) (*Blotter, error) {
	var result *Blotter
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		// Load before validating so a stale id reports not-found.
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		fields, err := s.normalize(in)
		if err != nil {
			return err
		}

		existing.RecordDate = fields.RecordDate
		existing.Status = fields.Status
		existing.ActionTaken = fields.ActionTaken
		existing.NatureOfDispute = fields.NatureOfDispute
		existing.Complainant = fields.Complainant
		existing.Respondent = fields.Respondent
		existing.FullReport = fields.FullReport

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

func (s *Service) Get(ctx context.Context, id string) (*Blotter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Blotter, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]Blotter, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

func (s *Service) normalize(in Input) (*Blotter, error) {
	record := &Blotter{
		Status:          upper(in.Status),
		ActionTaken:     upper(in.ActionTaken),
		NatureOfDispute: upper(in.NatureOfDispute),
		Complainant:     upper(in.Complainant),
		Respondent:      upper(in.Respondent),
		FullReport:      upper(in.FullReport),
	}

	if in.RecordDate != nil {
		record.RecordDate = *in.RecordDate
	} else {
		record.RecordDate = s.now()
	}

	if record.NatureOfDispute == "" {
		return nil, outcome.Invalidf("Nature of dispute cannot be empty.")
	}
	if record.Complainant == "" {
		return nil, outcome.Invalidf("Complainant cannot be empty.")
	}
	if record.Respondent == "" {
		return nil, outcome.Invalidf("Respondent cannot be empty.")
	}
	if record.FullReport == "" {
		return nil, outcome.Invalidf("Full report cannot be empty.")
	}
	if record.Status != "" && !ValidStatus(record.Status) {
		return nil, outcome.Invalidf("Unknown status %q.", record.Status)
	}

	return record, nil
}

func upper(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
