package user

import (
	"context"
	"errors"
	"strings"

	"barangay-records-go/internal/domain/resident"
	"barangay-records-go/pkg/outcome"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Residents confirms the referenced resident exists before an account is
// accepted.
type Residents interface {
	Get(ctx context.Context, id string) (*resident.Resident, error)
}

type Service struct {
	repo      Repository
	residents Residents
}

func NewService(repo Repository, residents Residents) *Service {
	return &Service{repo: repo, residents: residents}
}

type Input struct {
	Username        string
	Password        string
	ConfirmPassword string
	Position        string
	ResidentID      string
}

func (s *Service) Create(ctx context.Context, in Input) (*User, error) {
	record, password, err := s.normalize(ctx, in, true)
	if err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, outcome.Persist(err)
	}
	record.PasswordHash = hash

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		taken, err := tx.UsernameTaken(ctx, record.Username, "")
		if err != nil {
			return err
		}
		if taken {
			return outcome.Invalidf("Username already exists.")
		}

		linked, err := tx.ResidentLinked(ctx, record.ResidentID, "")
		if err != nil {
			return err
		}
		if linked {
			return outcome.Invalidf("Resident already has a user account.")
		}

		record.ID = uuid.NewString()
		return tx.Create(ctx, record)
	})
	if err != nil {
		return nil, outcome.Persist(err)
	}

	return record, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*User, error) {
	var result *User
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		// Load before validating so a stale id reports not-found.
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			return err
		}

		fields, password, err := s.normalize(ctx, in, false)
		if err != nil {
			return err
		}

		taken, err := tx.UsernameTaken(ctx, fields.Username, existing.ID)
		if err != nil {
			return err
		}
		if taken {
			return outcome.Invalidf("Username already exists.")
		}

		linked, err := tx.ResidentLinked(ctx, fields.ResidentID, existing.ID)
		if err != nil {
			return err
		}
		if linked {
			return outcome.Invalidf("Resident already has a user account.")
		}

		existing.Username = fields.Username
		existing.Position = fields.Position
		existing.ResidentID = fields.ResidentID
		existing.Resident = fields.Resident

		// A blank password keeps the stored hash.
		if password != "" {
			hash, err := hashPassword(password)
			if err != nil {
				return err
			}
			existing.PasswordHash = hash
		}

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

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Search(ctx context.Context, query string) ([]User, error) {
	if strings.TrimSpace(query) == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, query)
}

// HasAccounts reports whether any user account exists yet; first-run setup
// is only allowed while it returns false.
func (s *Service) HasAccounts(ctx context.Context) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, outcome.Persist(err)
	}
	return count > 0, nil
}

// Authenticate checks a username/password pair. Unknown usernames and
// wrong passwords fail identically so callers cannot enumerate accounts.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, outcome.ErrInvalidCredentials
	}

	record, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, outcome.ErrNotFound) {
			return nil, outcome.ErrInvalidCredentials
		}
		return nil, outcome.Persist(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password)) != nil {
		return nil, outcome.ErrInvalidCredentials
	}

	return record, nil
}

func (s *Service) normalize(ctx context.Context, in Input, requirePassword bool) (*User, string, error) {
	record := &User{
		// Username and password are stored case-as-entered.
		Username: strings.TrimSpace(in.Username),
		Position: strings.ToUpper(strings.TrimSpace(in.Position)),
	}
	password := strings.TrimSpace(in.Password)
	confirm := strings.TrimSpace(in.ConfirmPassword)

	if record.Username == "" {
		return nil, "", outcome.Invalidf("Username cannot be empty.")
	}
	if requirePassword && password == "" {
		return nil, "", outcome.Invalidf("Password cannot be empty.")
	}
	if confirm != "" && confirm != password {
		return nil, "", outcome.Invalidf("Passwords do not match.")
	}
	if record.Position != "" && !ValidPosition(record.Position) {
		return nil, "", outcome.Invalidf("Unknown position %q.", record.Position)
	}

	residentID := strings.TrimSpace(in.ResidentID)
	if residentID == "" {
		return nil, "", outcome.Invalidf("Please select a resident.")
	}
	owner, err := s.residents.Get(ctx, residentID)
	if err != nil {
		if errors.Is(err, outcome.ErrNotFound) {
			return nil, "", outcome.Invalidf("Selected resident does not exist.")
		}
		return nil, "", outcome.Persist(err)
	}
	record.ResidentID = owner.ID
	record.Resident = *owner

	return record, password, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
