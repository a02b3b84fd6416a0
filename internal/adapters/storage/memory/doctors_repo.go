package memory

import (
	"context"

	"clinical-rx/internal/domain/doctors"
	"clinical-rx/internal/ports/storage"
)

type doctorRepo struct {
	t *table[doctors.Doctor]
}

func newDoctorRepo() *doctorRepo {
	return &doctorRepo{t: newTable(func(d *doctors.Doctor) *int64 { return &d.ID })}
}

// Create: el chequeo de email y el insert ocurren bajo el mismo lock.
func (r *doctorRepo) Create(ctx context.Context, d doctors.Doctor) (doctors.Doctor, error) {
	return r.t.insert(d, func(existing doctors.Doctor) bool {
		return existing.Email == d.Email
	})
}

func (r *doctorRepo) GetByID(ctx context.Context, id int64) (doctors.Doctor, error) {
	d, ok := r.t.find(func(d doctors.Doctor) bool { return d.ID == id })
	if !ok {
		return doctors.Doctor{}, storage.ErrNotFound
	}
	return d, nil
}

// GetByEmail compara exacto: el email no se normaliza.
func (r *doctorRepo) GetByEmail(ctx context.Context, email string) (doctors.Doctor, error) {
	d, ok := r.t.find(func(d doctors.Doctor) bool { return d.Email == email })
	if !ok {
		return doctors.Doctor{}, storage.ErrNotFound
	}
	return d, nil
}

func (r *doctorRepo) Update(ctx context.Context, d doctors.Doctor) error {
	if !r.t.replace(func(existing doctors.Doctor) bool { return existing.ID == d.ID }, d) {
		return storage.ErrNotFound
	}
	return nil
}
