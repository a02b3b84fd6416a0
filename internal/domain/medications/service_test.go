package medications

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clinical-rx/internal/ports/storage"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID int64
	items  []Medication
}

func (r *testRepo) Create(ctx context.Context, m Medication) (Medication, error) {
	r.nextID++
	m.ID = r.nextID
	r.items = append(r.items, m)
	return m, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Medication, error) {
	for _, m := range r.items {
		if m.ID == id {
			return m, nil
		}
	}
	return Medication{}, storage.ErrNotFound
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Medication, error) {
	out := make([]Medication, 0)
	for _, m := range r.items {
		if f.ActiveOnly && !m.IsActive {
			continue
		}
		if f.DrugClass != "" && m.DrugClass != f.DrugClass {
			continue
		}
		out = append(out, m)
	}
	return storage.Apply(out, f.Page), nil
}

func (r *testRepo) Search(ctx context.Context, q string, limit int) ([]Medication, error) {
	out := make([]Medication, 0)
	for _, m := range r.items {
		if strings.Contains(strings.ToLower(m.Name), strings.ToLower(q)) {
			out = append(out, m)
		}
	}
	return storage.Apply(out, storage.Page{Limit: limit}), nil
}

func (r *testRepo) DrugClasses(ctx context.Context) ([]string, error) {
	out := make([]string, 0)
	for _, m := range r.items {
		if m.IsActive {
			out = append(out, m.DrugClass)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, m Medication) error {
	for i := range r.items {
		if r.items[i].ID == m.ID {
			r.items[i] = m
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// -------------------------
// Helpers
// -------------------------

func newTestService(t *testing.T) (*Service, context.Context) {
	t.Helper()

	svc := NewService(storage.Backends[Repository]{Memory: &testRepo{}})
	fixed := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	return svc, storage.WithMode(context.Background(), storage.ModeMemory)
}

func seed(t *testing.T, svc *Service, ctx context.Context) {
	t.Helper()
	for _, in := range []CreateInput{
		{Name: "Варфарин", DrugClass: "Антикоагулянты"},
		{Name: "Аспирин", DrugClass: "Антиагреганты", TherapeuticRange: &TherapeuticRange{Min: 0, Max: 100}},
		{Name: "Ривароксабан", DrugClass: "Антикоагулянты"},
		{Name: "Placebo", DrugClass: ""},
	} {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("seed create err: %v", err)
		}
	}
}

// -------------------------
// Tests
// -------------------------

func TestCreate_DefaultsActive(t *testing.T) {
	svc, ctx := newTestService(t)

	m, err := svc.Create(ctx, CreateInput{Name: "  Аспирин "})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if !m.IsActive || m.Name != "Аспирин" {
		t.Fatalf("unexpected medication: %+v", m)
	}
	if _, err := svc.Create(ctx, CreateInput{Name: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSearch_CaseInsensitiveCyrillic(t *testing.T) {
	svc, ctx := newTestService(t)
	seed(t, svc, ctx)

	got, err := svc.Search(ctx, "аспирин", 0)
	if err != nil {
		t.Fatalf("Search err: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Аспирин" {
		t.Fatalf("expected Аспирин, got %+v", got)
	}

	got, err = svc.Search(ctx, "zzzznomatch", 10)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %+v err=%v", got, err)
	}
}

func TestSearch_Validation(t *testing.T) {
	svc, ctx := newTestService(t)

	if _, err := svc.Search(ctx, "  ", 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty q, got %v", err)
	}
	if _, err := svc.Search(ctx, "a", MaxSearchLimit+1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for limit > max, got %v", err)
	}
}

func TestList_ActiveOnlyAndClassFilter(t *testing.T) {
	svc, ctx := newTestService(t)
	seed(t, svc, ctx)

	off := false
	if _, err := svc.Update(ctx, 1, UpdateInput{IsActive: &off}); err != nil {
		t.Fatalf("Update err: %v", err)
	}

	got, err := svc.List(ctx, storage.Page{}, "Антикоагулянты")
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ривароксабан" {
		t.Fatalf("expected only active anticoagulant, got %+v", got)
	}

	all, _ := svc.List(ctx, storage.Page{}, "")
	if len(all) != 3 {
		t.Fatalf("expected 3 active medications, got %d", len(all))
	}
}

func TestDrugClasses_DistinctSortedNonEmpty(t *testing.T) {
	svc, ctx := newTestService(t)
	seed(t, svc, ctx)

	got, err := svc.DrugClasses(ctx)
	if err != nil {
		t.Fatalf("DrugClasses err: %v", err)
	}
	want := []string{"Антиагреганты", "Антикоагулянты"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUpdateDelete_NotFound(t *testing.T) {
	svc, ctx := newTestService(t)

	name := "x"
	if _, err := svc.Update(ctx, 42, UpdateInput{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
