package dashboard

import (
	"context"

	"barangay-records-go/pkg/outcome"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	result, err := s.repo.Counts(ctx)
	if err != nil {
		return Summary{}, outcome.Persist(err)
	}

	if result.ResidentsBySitio, err = s.repo.ResidentsBySitio(ctx); err != nil {
		return Summary{}, outcome.Persist(err)
	}
	if result.ResidentsBySex, err = s.repo.ResidentsBySex(ctx); err != nil {
		return Summary{}, outcome.Persist(err)
	}
	if result.BlottersByStatus, err = s.repo.BlottersByStatus(ctx); err != nil {
		return Summary{}, outcome.Persist(err)
	}

	for _, bucket := range result.BlottersByStatus {
		if bucket.Label == "OPEN" {
			result.OpenBlotters = bucket.Count
		}
	}

	return result, nil
}
