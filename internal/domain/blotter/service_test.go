package blotter

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"barangay-records-go/internal/search"
	"barangay-records-go/pkg/outcome"
)

type fakeBlotterRepo struct {
	blotters map[string]*Blotter
}

func newFakeBlotterRepo() *fakeBlotterRepo {
	return &fakeBlotterRepo{blotters: make(map[string]*Blotter)}
}

func (r *fakeBlotterRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeBlotterRepo) GetByID(ctx context.Context, id string) (*Blotter, error) {
	record, ok := r.blotters[id]
	if !ok {
		return nil, outcome.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (r *fakeBlotterRepo) Create(ctx context.Context, record *Blotter) error {
	copied := *record
	r.blotters[record.ID] = &copied
	return nil
}

func (r *fakeBlotterRepo) Update(ctx context.Context, record *Blotter) error {
	if _, ok := r.blotters[record.ID]; !ok {
		return outcome.ErrNotFound
	}
	copied := *record
	r.blotters[record.ID] = &copied
	return nil
}

func (r *fakeBlotterRepo) Delete(ctx context.Context, id string) error {
	delete(r.blotters, id)
	return nil
}

func (r *fakeBlotterRepo) List(ctx context.Context) ([]Blotter, error) {
	result := make([]Blotter, 0, len(r.blotters))
	for _, record := range r.blotters {
		result = append(result, *record)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RecordDate.After(result[j].RecordDate)
	})
	return result, nil
}

func (r *fakeBlotterRepo) Search(ctx context.Context, query string) ([]Blotter, error) {
	all, _ := r.List(ctx)
	result := make([]Blotter, 0, len(all))
	for _, record := range all {
		if search.Match(query, record.Status, record.NatureOfDispute, record.Complainant, record.Respondent, record.ActionTaken) {
			result = append(result, record)
		}
	}
	return result, nil
}

func validInput() Input {
	return Input{
		Status:          "open",
		NatureOfDispute: "Boundary dispute",
		Complainant:     "Juan Reyes",
		Respondent:      "Pedro Santos",
		FullReport:      "Fence moved two meters.",
	}
}

func TestCreateBlotterNormalizes(t *testing.T) {
	repo := newFakeBlotterRepo()
	svc := NewService(repo)

	result, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Status != "OPEN" || result.NatureOfDispute != "BOUNDARY DISPUTE" {
		t.Fatalf("expected upper-cased fields, got %+v", result)
	}
	if result.RecordDate.IsZero() {
		t.Fatalf("expected record date defaulted")
	}
}

func TestCreateBlotterRequiredFields(t *testing.T) {
	svc := NewService(newFakeBlotterRepo())

	cases := []struct {
		mutate func(*Input)
		reason string
	}{
		{func(in *Input) { in.NatureOfDispute = "" }, "Nature of dispute cannot be empty."},
		{func(in *Input) { in.Complainant = " " }, "Complainant cannot be empty."},
		{func(in *Input) { in.Respondent = "" }, "Respondent cannot be empty."},
		{func(in *Input) { in.FullReport = "" }, "Full report cannot be empty."},
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

func TestCreateBlotterUnknownStatus(t *testing.T) {
	svc := NewService(newFakeBlotterRepo())

	in := validInput()
	in.Status = "PENDING"
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected rejection for unknown status")
	}
}

func TestUpdateBlotterNotFound(t *testing.T) {
	svc := NewService(newFakeBlotterRepo())

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

func TestListBlottersNewestFirst(t *testing.T) {
	repo := newFakeBlotterRepo()
	svc := NewService(repo)

	older := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	in := validInput()
	in.RecordDate = &older
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	in2 := validInput()
	in2.Complainant = "Ana Cruz"
	in2.RecordDate = &newer
	if _, err := svc.Create(context.Background(), in2); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 2 || !listed[0].RecordDate.Equal(newer) {
		t.Fatalf("expected newest first, got %+v", listed)
	}
}

func TestSearchBlotterByParty(t *testing.T) {
	repo := newFakeBlotterRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	matched, err := svc.Search(context.Background(), "reyes boundary")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("expected one match, got %d", len(matched))
	}

	none, err := svc.Search(context.Background(), "reyes unrelated")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no match, got %d", len(none))
	}
}
