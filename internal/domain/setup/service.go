// Package setup performs the one-time first-run flow: it records the
// barangay profile, then creates the first household, the resident who
// administers the system, and that resident's user account. The flow is
// refused once any user account exists.
package setup

import (
	"context"

	"barangay-records-go/internal/domain/barangay"
	"barangay-records-go/internal/domain/household"
	"barangay-records-go/internal/domain/resident"
	"barangay-records-go/internal/domain/user"
	"barangay-records-go/pkg/outcome"
)

type Service struct {
	barangays  *barangay.Service
	households *household.Service
	residents  *resident.Service
	users      *user.Service
}

func NewService(barangays *barangay.Service, households *household.Service, residents *resident.Service, users *user.Service) *Service {
	return &Service{
		barangays:  barangays,
		households: households,
		residents:  residents,
		users:      users,
	}
}

type Input struct {
	Barangay  barangay.Input
	Household household.Input
	Resident  resident.Input
	User      user.Input
}

type Result struct {
	Barangay  *barangay.Barangay   `json:"barangay"`
	Household *household.Household `json:"household"`
	Resident  *resident.Resident   `json:"resident"`
	User      *user.User           `json:"user"`
}

func (s *Service) Run(ctx context.Context, in Input) (*Result, error) {
	occupied, err := s.users.HasAccounts(ctx)
	if err != nil {
		return nil, outcome.Persist(err)
	}
	if occupied {
		return nil, outcome.Invalidf("Setup has already been completed.")
	}

	brgy, err := s.barangays.Save(ctx, in.Barangay)
	if err != nil {
		return nil, err
	}

	hh, err := s.households.Create(ctx, in.Household)
	if err != nil {
		return nil, err
	}

	residentInput := in.Resident
	residentInput.HouseholdName = hh.HouseholdName
	res, err := s.residents.Create(ctx, residentInput)
	if err != nil {
		return nil, err
	}

	userInput := in.User
	userInput.ResidentID = res.ID
	account, err := s.users.Create(ctx, userInput)
	if err != nil {
		return nil, err
	}

	return &Result{Barangay: brgy, Household: hh, Resident: res, User: account}, nil
}

// Completed reports whether the flow has already run, which the login
// screen uses to decide whether to show the setup wizard.
func (s *Service) Completed(ctx context.Context) (bool, error) {
	occupied, err := s.users.HasAccounts(ctx)
	if err != nil {
		return false, outcome.Persist(err)
	}
	return occupied, nil
}
