package memory

import (
	"context"

	"clinical-rx/internal/domain/prescriptions"
	"clinical-rx/internal/ports/storage"
)

type prescriptionRepo struct {
	t *table[prescriptions.Prescription]
}

func newPrescriptionRepo() *prescriptionRepo {
	return &prescriptionRepo{t: newTable(func(p *prescriptions.Prescription) *int64 { return &p.ID })}
}

func ownedPrescription(id, doctorID int64) func(prescriptions.Prescription) bool {
	return func(p prescriptions.Prescription) bool { return p.ID == id && p.DoctorID == doctorID }
}

func (r *prescriptionRepo) Create(ctx context.Context, p prescriptions.Prescription) (prescriptions.Prescription, error) {
	return r.t.insert(p, nil)
}

func (r *prescriptionRepo) GetByID(ctx context.Context, id, doctorID int64) (prescriptions.Prescription, error) {
	p, ok := r.t.find(ownedPrescription(id, doctorID))
	if !ok {
		return prescriptions.Prescription{}, storage.ErrNotFound
	}
	return p, nil
}

func (r *prescriptionRepo) List(ctx context.Context, doctorID int64, f prescriptions.ListFilter) ([]prescriptions.Prescription, error) {
	items := r.t.filter(func(p prescriptions.Prescription) bool {
		if p.DoctorID != doctorID {
			return false
		}
		if f.PatientID != nil && p.PatientID != *f.PatientID {
			return false
		}
		return f.Status == "" || p.Status == f.Status
	})
	return storage.Apply(items, f.Page), nil
}

func (r *prescriptionRepo) Update(ctx context.Context, p prescriptions.Prescription) error {
	if !r.t.replace(ownedPrescription(p.ID, p.DoctorID), p) {
		return storage.ErrNotFound
	}
	return nil
}

func (r *prescriptionRepo) Delete(ctx context.Context, id, doctorID int64) error {
	if !r.t.remove(ownedPrescription(id, doctorID)) {
		return storage.ErrNotFound
	}
	return nil
}
