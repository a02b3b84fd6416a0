package memory

import (
	"context"

	"clinical-rx/internal/domain/patients"
	"clinical-rx/internal/ports/storage"
)

type patientRepo struct {
	t *table[patients.Patient]
}

func newPatientRepo() *patientRepo {
	return &patientRepo{t: newTable(func(p *patients.Patient) *int64 { return &p.ID })}
}

func ownedPatient(id, doctorID int64) func(patients.Patient) bool {
	return func(p patients.Patient) bool { return p.ID == id && p.DoctorID == doctorID }
}

// Create no valida el doctor: en memoria no hay foreign keys.
func (r *patientRepo) Create(ctx context.Context, p patients.Patient) (patients.Patient, error) {
	return r.t.insert(p, nil)
}

func (r *patientRepo) GetByID(ctx context.Context, id, doctorID int64) (patients.Patient, error) {
	p, ok := r.t.find(ownedPatient(id, doctorID))
	if !ok {
		return patients.Patient{}, storage.ErrNotFound
	}
	return p, nil
}

func (r *patientRepo) List(ctx context.Context, doctorID int64, page storage.Page) ([]patients.Patient, error) {
	items := r.t.filter(func(p patients.Patient) bool { return p.DoctorID == doctorID })
	return storage.Apply(items, page), nil
}

func (r *patientRepo) Update(ctx context.Context, p patients.Patient) error {
	if !r.t.replace(ownedPatient(p.ID, p.DoctorID), p) {
		return storage.ErrNotFound
	}
	return nil
}

// Delete no toca las recetas del paciente: quedan huérfanas.
func (r *patientRepo) Delete(ctx context.Context, id, doctorID int64) error {
	if !r.t.remove(ownedPatient(id, doctorID)) {
		return storage.ErrNotFound
	}
	return nil
}
