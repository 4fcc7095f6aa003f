package household

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"barangay-records-go/internal/search"
	"barangay-records-go/pkg/outcome"
)

type fakeHouseholdRepo struct {
	households map[string]*Household
	residents  map[string]int64
}

func newFakeHouseholdRepo() *fakeHouseholdRepo {
	return &fakeHouseholdRepo{
		households: make(map[string]*Household),
		residents:  make(map[string]int64),
	}
}

func (r *fakeHouseholdRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeHouseholdRepo) GetByID(ctx context.Context, id string) (*Household, error) {
	record, ok := r.households[id]
	if !ok {
		return nil, outcome.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *fakeHouseholdRepo) GetByName(ctx context.Context, name string) (*Household, error) {
	for _, record := range r.households {
		if strings.EqualFold(record.HouseholdName, name) {
			copied := *record
			return &copied, nil
		}
	}
	return nil, outcome.ErrNotFound
}

func (r *fakeHouseholdRepo) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	for _, record := range r.households {
		if record.ID != excludeID && strings.EqualFold(record.HouseholdName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeHouseholdRepo) CountResidents(ctx context.Context, householdID string) (int64, error) {
	return r.residents[householdID], nil
}

func (r *fakeHouseholdRepo) Create(ctx context.Context, record *Household) error {
	copied := *record
	r.households[record.ID] = &copied
	return nil
}

func (r *fakeHouseholdRepo) Update(ctx context.Context, record *Household) error {
	if _, ok := r.households[record.ID]; !ok {
		return outcome.ErrNotFound
	}
	copied := *record
	r.households[record.ID] = &copied
	return nil
}

func (r *fakeHouseholdRepo) Delete(ctx context.Context, id string) error {
	delete(r.households, id)
	return nil
}

func (r *fakeHouseholdRepo) List(ctx context.Context) ([]Household, error) {
	result := make([]Household, 0, len(r.households))
	for _, record := range r.households {
		result = append(result, *record)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].HouseholdName < result[j].HouseholdName
	})
	return result, nil
}

func (r *fakeHouseholdRepo) Search(ctx context.Context, query string) ([]Household, error) {
	all, _ := r.List(ctx)
	result := make([]Household, 0, len(all))
	for _, record := range all {
		if search.Match(query, record.HouseholdName, record.HouseNo, record.Street, record.Sitio, record.Landmark) {
			result = append(result, record)
		}
	}
	return result, nil
}

func TestCreateHouseholdNormalizesFields(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	result, err := svc.Create(context.Background(), Input{
		HouseholdName: "Dela Cruz",
		HouseNo:       "12",
		Street:        "Rizal",
		Sitio:         "casaratan",
		Landmark:      "Near well",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.HouseholdName != "DELA CRUZ" {
		t.Fatalf("expected upper-cased name, got %q", result.HouseholdName)
	}
	if result.Street != "RIZAL" || result.Sitio != "CASARATAN" || result.Landmark != "NEAR WELL" {
		t.Fatalf("expected upper-cased fields, got %+v", result)
	}
	if result.ID == "" {
		t.Fatalf("expected id assigned")
	}
}

func TestCreateHouseholdNameRequired(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), Input{HouseholdName: "   "})
	if reason, ok := outcome.IsValidation(err); !ok || reason != "Household name cannot be empty." {
		t.Fatalf("expected validation rejection, got %v", err)
	}
}

func TestCreateHouseholdDuplicateNameCaseInsensitive(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), Input{HouseholdName: "Dela Cruz"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), Input{HouseholdName: "dela cruz"})
	if reason, ok := outcome.IsValidation(err); !ok || reason != "Household name already exists." {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
}

func TestCreateHouseholdUnknownSitio(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), Input{HouseholdName: "Reyes", Sitio: "UPTOWN"})
	if _, ok := outcome.IsValidation(err); !ok {
		t.Fatalf("expected validation rejection, got %v", err)
	}
}

func TestUpdateHouseholdKeepsOwnNameValid(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Input{HouseholdName: "Dela Cruz", Sitio: "TRAMO"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Re-saving with the same name must not count as a duplicate.
	updated, err := svc.Update(context.Background(), created.ID, Input{HouseholdName: "Dela Cruz", Street: "Mabini"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Street != "MABINI" {
		t.Fatalf("expected street updated, got %q", updated.Street)
	}
}

func TestUpdateHouseholdNotFound(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), "missing", Input{HouseholdName: "Reyes"})
	if !errors.Is(err, outcome.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	// A stale id wins over bad fields: still not-found, not a validation
	// complaint about the blank name.
	_, err = svc.Update(context.Background(), "missing", Input{})
	if !errors.Is(err, outcome.ErrNotFound) {
		t.Fatalf("expected not found for invalid fields too, got %v", err)
	}
}

func TestDeleteHouseholdWithResidentsRejected(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Input{HouseholdName: "Dela Cruz"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	repo.residents[created.ID] = 3

	err = svc.Delete(context.Background(), created.ID)
	if reason, ok := outcome.IsValidation(err); !ok || reason != "Household has 3 resident(s); reassign or delete them first." {
		t.Fatalf("expected dependent rejection, got %v", err)
	}
	if _, ok := repo.households[created.ID]; !ok {
		t.Fatalf("household should not have been deleted")
	}
}

func TestDeleteHouseholdSuccess(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Input{HouseholdName: "Reyes"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, ok := repo.households[created.ID]; ok {
		t.Fatalf("expected household removed")
	}
}

func TestSearchBlankQueryEqualsList(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	for _, name := range []string{"Reyes", "Dela Cruz", "Aquino"} {
		if _, err := svc.Create(context.Background(), Input{HouseholdName: name}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	searched, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(listed) != len(searched) {
		t.Fatalf("expected identical result sets, got %d vs %d", len(listed), len(searched))
	}
	for i := range listed {
		if listed[i].ID != searched[i].ID {
			t.Fatalf("expected same canonical order at %d", i)
		}
	}
	if listed[0].HouseholdName != "AQUINO" {
		t.Fatalf("expected canonical order by name, got %q first", listed[0].HouseholdName)
	}
}

func TestSearchConjunctive(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), Input{HouseholdName: "Dela Cruz", Street: "Rizal", Sitio: "TRAMO"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	matched, err := svc.Search(context.Background(), "cruz rizal")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("expected one match, got %d", len(matched))
	}

	none, err := svc.Search(context.Background(), "cruz xyz")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no match, got %d", len(none))
	}
}

func TestGetByNameCaseInsensitive(t *testing.T) {
	repo := newFakeHouseholdRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Input{HouseholdName: "Dela Cruz"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := svc.GetByName(context.Background(), "dela cruz")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected %s, got %s", created.ID, found.ID)
	}

	if _, err := svc.GetByName(context.Background(), ""); !errors.Is(err, outcome.ErrNotFound) {
		t.Fatalf("expected not found for empty name, got %v", err)
	}
}
