package resident

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"barangay-records-go/internal/domain/household"
	"barangay-records-go/internal/search"
	"barangay-records-go/pkg/outcome"
)

type fakeResidentRepo struct {
	residents    map[string]*Resident
	users        map[string]int64
	certificates map[string]int64
}

func newFakeResidentRepo() *fakeResidentRepo {
	return &fakeResidentRepo{
		residents:    make(map[string]*Resident),
		users:        make(map[string]int64),
		certificates: make(map[string]int64),
	}
}

func (r *fakeResidentRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeResidentRepo) GetByID(ctx context.Context, id string) (*Resident, error) {
	record, ok := r.residents[id]
	if !ok {
		return nil, outcome.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *fakeResidentRepo) IdentityTaken(ctx context.Context, first, last, middle, suffix, excludeID string) (bool, error) {
	for _, record := range r.residents {
		if record.ID == excludeID {
			continue
		}
		if strings.EqualFold(record.FirstName, first) &&
			strings.EqualFold(record.LastName, last) &&
			strings.EqualFold(record.MiddleName, middle) &&
			strings.EqualFold(record.Suffix, suffix) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeResidentRepo) CountUsers(ctx context.Context, residentID string) (int64, error) {
	return r.users[residentID], nil
}

func (r *fakeResidentRepo) CountCertificates(ctx context.Context, residentID string) (int64, error) {
	return r.certificates[residentID], nil
}

func (r *fakeResidentRepo) Create(ctx context.Context, record *Resident) error {
	copied := *record
	r.residents[record.ID] = &copied
	return nil
}

func (r *fakeResidentRepo) Update(ctx context.Context, record *Resident) error {
	if _, ok := r.residents[record.ID]; !ok {
		return outcome.ErrNotFound
	}
	copied := *record
	r.residents[record.ID] = &copied
	return nil
}

func (r *fakeResidentRepo) Delete(ctx context.Context, id string) error {
	delete(r.residents, id)
	return nil
}

func (r *fakeResidentRepo) List(ctx context.Context) ([]Resident, error) {
	result := make([]Resident, 0, len(r.residents))
	for _, record := range r.residents {
		result = append(result, *record)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].LastName != result[j].LastName {
			return result[i].LastName < result[j].LastName
		}
		return result[i].HouseholdID < result[j].HouseholdID
	})
	return result, nil
}

func (r *fakeResidentRepo) Search(ctx context.Context, query string) ([]Resident, error) {
	all, _ := r.List(ctx)
	result := make([]Resident, 0, len(all))
	for _, record := range all {
		if search.Match(query,
			record.FirstName, record.MiddleName, record.LastName, record.Suffix, record.Role,
			record.Household.HouseholdName, record.Household.HouseNo, record.Household.Street,
			record.Household.Sitio, record.Household.Landmark) {
			result = append(result, record)
		}
	}
	return result, nil
}

type fakeHouseholds struct {
	byName map[string]*household.Household
}

func (f *fakeHouseholds) GetByName(ctx context.Context, name string) (*household.Household, error) {
	record, ok := f.byName[strings.ToUpper(name)]
	if !ok {
		return nil, outcome.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func newFixture() (*fakeResidentRepo, *Service) {
	repo := newFakeResidentRepo()
	households := &fakeHouseholds{byName: map[string]*household.Household{
		"DELA CRUZ FAMILY": {ID: "hh-1", HouseholdName: "DELA CRUZ FAMILY", HouseNo: "12", Street: "RIZAL", Sitio: "CASARATAN", Landmark: "NEAR CHAPEL"},
		"REYES FAMILY":     {ID: "hh-2", HouseholdName: "REYES FAMILY", Sitio: "TRAMO"},
	}}
	return repo, NewService(repo, households)
}

func validInput() Input {
	return Input{
		FirstName:     "Maria",
		LastName:      "Dela Cruz",
		MiddleName:    "Santos",
		Citizenship:   "Filipino",
		Sex:           "female",
		CivilStatus:   "single",
		Role:          "head",
		Email:         "Maria@Example.com",
		HouseholdName: "Dela Cruz Family",
	}
}

func TestCreateResidentNormalizesExceptEmail(t *testing.T) {
	repo, svc := newFixture()

	result, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.FirstName != "MARIA" || result.LastName != "DELA CRUZ" || result.Citizenship != "FILIPINO" {
		t.Fatalf("expected upper-cased fields, got %+v", result)
	}
	if result.Email != "Maria@Example.com" {
		t.Fatalf("expected email case preserved, got %q", result.Email)
	}
	if result.HouseholdID != "hh-1" {
		t.Fatalf("expected household resolved, got %q", result.HouseholdID)
	}
	if _, ok := repo.residents[result.ID]; !ok {
		t.Fatalf("expected resident persisted")
	}
}

func TestCreateResidentRequiredFields(t *testing.T) {
	_, svc := newFixture()

	cases := []struct {
		mutate func(*Input)
		reason string
	}{
		{func(in *Input) { in.FirstName = " " }, "First name cannot be empty."},
		{func(in *Input) { in.LastName = "" }, "Last name cannot be empty."},
		{func(in *Input) { in.Citizenship = "" }, "Citizenship cannot be empty."},
		{func(in *Input) { in.HouseholdName = "" }, "Please select a household."},
	}

	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, err := svc.Create(context.Background(), in)
		if reason, ok := outcome.IsValidation(err); !ok || reason != tc.reason {
			t.Fatalf("expected %q, got %v", tc.reason, err)
		}
	}
}

func TestCreateResidentUnresolvableHousehold(t *testing.T) {
	_, svc := newFixture()

	in := validInput()
	in.HouseholdName = "Nonexistent Family"
	_, err := svc.Create(context.Background(), in)
	if _, ok := outcome.IsValidation(err); !ok {
		t.Fatalf("expected validation rejection, got %v", err)
	}
}

func TestCreateResidentDuplicateIdentityTuple(t *testing.T) {
	_, svc := newFixture()

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	in := validInput()
	in.FirstName = "maria"
	in.LastName = "DELA cruz"
	_, err := svc.Create(context.Background(), in)
	if reason, ok := outcome.IsValidation(err); !ok || reason != "Resident already exists." {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
}

func TestCreateResidentInvalidEnum(t *testing.T) {
	_, svc := newFixture()

	in := validInput()
	in.CivilStatus = "COMPLICATED"
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected rejection for unknown civil status")
	}

	in = validInput()
	in.Role = "COUSIN"
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected rejection for unknown role")
	}
}

func TestUpdateResidentIdempotent(t *testing.T) {
	_, svc := newFixture()

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Same identity tuple must not trip the uniqueness check against itself.
	updated, err := svc.Update(context.Background(), created.ID, validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("identity changed on update")
	}
}

func TestUpdateResidentMoveHousehold(t *testing.T) {
	_, svc := newFixture()

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	in := validInput()
	in.HouseholdName = "Reyes Family"
	updated, err := svc.Update(context.Background(), created.ID, in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.HouseholdID != "hh-2" {
		t.Fatalf("expected household hh-2, got %q", updated.HouseholdID)
	}
}

func TestUpdateResidentNotFound(t *testing.T) {
	_, svc := newFixture()

	_, err := svc.Update(context.Background(), "missing", validInput())
	if !errors.Is(err, outcome.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	// A stale id wins over bad fields: not-found, not validation.
	_, err = svc.Update(context.Background(), "missing", Input{})
	if !errors.Is(err, outcome.ErrNotFound) {
		t.Fatalf("expected not found for invalid fields too, got %v", err)
	}
}

func TestDeleteResidentWithDependentsRejected(t *testing.T) {
	repo, svc := newFixture()

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	repo.users[created.ID] = 1
	if err := svc.Delete(context.Background(), created.ID); err == nil {
		t.Fatalf("expected rejection while user account exists")
	}

	repo.users[created.ID] = 0
	repo.certificates[created.ID] = 2
	err = svc.Delete(context.Background(), created.ID)
	if reason, ok := outcome.IsValidation(err); !ok || reason != "Resident has 2 certificate(s); delete them first." {
		t.Fatalf("expected certificate rejection, got %v", err)
	}

	repo.certificates[created.ID] = 0
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
}

func TestSearchResidentAcrossJoinedHousehold(t *testing.T) {
	_, svc := newFixture()

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// "maria" matches first_name, "cruz" matches last_name or household name.
	matched, err := svc.Search(context.Background(), "maria cruz")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("expected one match, got %d", len(matched))
	}

	none, err := svc.Search(context.Background(), "maria xyz")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no rows, got %d", len(none))
	}
}

func TestSearchResidentFieldSet(t *testing.T) {
	_, svc := newFixture()

	in := validInput()
	in.Occupation = "Farmer"
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// The joined household's house number and landmark are searchable.
	byHouseNo, err := svc.Search(context.Background(), "12")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(byHouseNo) != 1 {
		t.Fatalf("expected house number to match, got %d rows", len(byHouseNo))
	}

	byLandmark, err := svc.Search(context.Background(), "chapel")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(byLandmark) != 1 {
		t.Fatalf("expected landmark to match, got %d rows", len(byLandmark))
	}

	// Occupation is stored but not part of the searchable field set.
	byOccupation, err := svc.Search(context.Background(), "farmer")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(byOccupation) != 0 {
		t.Fatalf("expected occupation not to match, got %d rows", len(byOccupation))
	}
}

func TestResidentFullName(t *testing.T) {
	record := Resident{FirstName: "MARIA", LastName: "DELA CRUZ", MiddleName: "SANTOS", Suffix: ""}
	if got := record.FullName(); got != "DELA CRUZ, MARIA SANTOS" {
		t.Fatalf("unexpected full name %q", got)
	}
}
