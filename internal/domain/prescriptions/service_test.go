package prescriptions

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinical-rx/internal/domain/clinical"
	"clinical-rx/internal/domain/patients"
	"clinical-rx/internal/ports/storage"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	nextID int64
	items  []Prescription
}

func (r *testRepo) Create(ctx context.Context, p Prescription) (Prescription, error) {
	r.nextID++
	p.ID = r.nextID
	r.items = append(r.items, p)
	return p, nil
}

func (r *testRepo) GetByID(ctx context.Context, id, doctorID int64) (Prescription, error) {
	for _, p := range r.items {
		if p.ID == id && p.DoctorID == doctorID {
			return p, nil
		}
	}
	return Prescription{}, storage.ErrNotFound
}

func (r *testRepo) List(ctx context.Context, doctorID int64, f ListFilter) ([]Prescription, error) {
	out := make([]Prescription, 0)
	for _, p := range r.items {
		if p.DoctorID != doctorID {
			continue
		}
		if f.PatientID != nil && p.PatientID != *f.PatientID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p)
	}
	return storage.Apply(out, f.Page), nil
}

func (r *testRepo) Update(ctx context.Context, p Prescription) error {
	for i := range r.items {
		if r.items[i].ID == p.ID && r.items[i].DoctorID == p.DoctorID {
			r.items[i] = p
			return nil
		}
	}
	return storage.ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id, doctorID int64) error {
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].DoctorID == doctorID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

// ownedPatients: patientID -> doctorID
type ownedPatients map[int64]int64

func (o ownedPatients) EnsureOwned(ctx context.Context, patientID, doctorID int64) error {
	if owner, ok := o[patientID]; ok && owner == doctorID {
		return nil
	}
	return patients.ErrNotFound
}

func newTestService(t *testing.T) (*Service, context.Context) {
	t.Helper()

	svc := NewService(
		storage.Backends[Repository]{Memory: &testRepo{}},
		ownedPatients{10: 1, 20: 2},
	)
	fixed := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	return svc, storage.WithMode(context.Background(), storage.ModeMemory)
}

// -------------------------
// Tests
// -------------------------

func TestCreate_Defaults(t *testing.T) {
	svc, ctx := newTestService(t)

	medID := int64(3)
	p, err := svc.Create(ctx, 1, CreateInput{
		PatientID: 10,
		RecommendedMedications: []RecommendedMedication{
			{MedicationID: &medID, Name: "Аспирин", Dosage: "100 мг"},
		},
		Dosage: clinical.Attributes{"amount": "100mg", "times_per_day": float64(1)},
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if p.Status != StatusDraft || !p.IsAIGenerated {
		t.Fatalf("expected draft + ai generated defaults, got %s %v", p.Status, p.IsAIGenerated)
	}
	if p.DoctorID != 1 || p.PatientID != 10 {
		t.Fatalf("unexpected owner/patient: %+v", p)
	}
	if *p.RecommendedMedications[0].MedicationID != 3 || p.Dosage["amount"] != "100mg" {
		t.Fatalf("nested payload not kept: %+v", p)
	}
}

func TestCreate_PatientMustBelongToCaller(t *testing.T) {
	svc, ctx := newTestService(t)

	if _, err := svc.Create(ctx, 1, CreateInput{PatientID: 20}); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound for foreign patient, got %v", err)
	}
	if _, err := svc.Create(ctx, 1, CreateInput{PatientID: 999}); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound for absent patient, got %v", err)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, ctx := newTestService(t)

	if _, err := svc.Create(ctx, 1, CreateInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without patient, got %v", err)
	}
	if _, err := svc.Create(ctx, 1, CreateInput{PatientID: 10, Status: "archived"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestUpdate_StatusAndOwnership(t *testing.T) {
	svc, ctx := newTestService(t)

	p, err := svc.Create(ctx, 1, CreateInput{PatientID: 10, Duration: "30 дней"})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	completed := StatusCompleted
	got, err := svc.Update(ctx, p.ID, 1, UpdateInput{Status: &completed})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if got.Status != StatusCompleted || got.Duration != "30 дней" {
		t.Fatalf("unexpected prescription: %+v", got)
	}

	if _, err := svc.Update(ctx, p.ID, 2, UpdateInput{Status: &completed}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	bad := Status("paused")
	if _, err := svc.Update(ctx, p.ID, 1, UpdateInput{Status: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestList_Filters(t *testing.T) {
	svc, ctx := newTestService(t)

	active := StatusActive
	a, _ := svc.Create(ctx, 1, CreateInput{PatientID: 10})
	_, _ = svc.Create(ctx, 1, CreateInput{PatientID: 10, Status: StatusActive})
	_, _ = svc.Create(ctx, 2, CreateInput{PatientID: 20})

	all, err := svc.List(ctx, 1, ListFilter{})
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 prescriptions for doctor 1, got %d err=%v", len(all), err)
	}

	got, _ := svc.List(ctx, 1, ListFilter{Status: active})
	if len(got) != 1 || got[0].ID == a.ID {
		t.Fatalf("expected only active prescription, got %+v", got)
	}

	pid := int64(20)
	got, _ = svc.List(ctx, 1, ListFilter{PatientID: &pid})
	if len(got) != 0 {
		t.Fatalf("foreign patient filter must be empty, got %+v", got)
	}

	if _, err := svc.List(ctx, 1, ListFilter{Status: "bogus"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, ctx := newTestService(t)

	p, _ := svc.Create(ctx, 1, CreateInput{PatientID: 10})

	if err := svc.Delete(ctx, p.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if err := svc.Delete(ctx, p.ID, 1); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if _, err := svc.Get(ctx, p.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
