package barangay

import (
	"context"
	"errors"
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

type Input struct {
	Name    string
	History string
	Mission string
	Vision  string
}

// Save creates the configuration row on first call and overwrites it on
// every call after that.
func (s *Service) Save(ctx context.Context, in Input) (*Barangay, error) {
	fields, err := normalize(in)
	if err != nil {
		return nil, err
	}

	var result *Barangay
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		existing, err := tx.Get(ctx)
		switch {
		case errors.Is(err, outcome.ErrNotFound):
			fields.ID = uuid.NewString()
			if err := tx.Create(ctx, fields); err != nil {
				return err
			}
			result = fields
			return nil
		case err != nil:
			return err
		}

		existing.Name = fields.Name
		existing.History = fields.History
		existing.Mission = fields.Mission
		existing.Vision = fields.Vision

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

func (s *Service) Get(ctx context.Context) (*Barangay, error) {
	return s.repo.Get(ctx)
}

func normalize(in Input) (*Barangay, error) {
	record := &Barangay{
		Name:    strings.ToUpper(strings.TrimSpace(in.Name)),
		History: strings.ToUpper(strings.TrimSpace(in.History)),
		Mission: strings.ToUpper(strings.TrimSpace(in.Mission)),
		Vision:  strings.ToUpper(strings.TrimSpace(in.Vision)),
	}
	if record.Name == "" {
		return nil, outcome.Invalidf("Barangay name cannot be empty.")
	}
	return record, nil
}
