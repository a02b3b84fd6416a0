package memory

import (
	"context"
	"strings"

	"clinical-rx/internal/domain/medications"
	"clinical-rx/internal/ports/storage"
)

type medicationRepo struct {
	t *table[medications.Medication]
}

func newMedicationRepo() *medicationRepo {
	return &medicationRepo{t: newTable(func(m *medications.Medication) *int64 { return &m.ID })}
}

func medicationID(id int64) func(medications.Medication) bool {
	return func(m medications.Medication) bool { return m.ID == id }
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	return r.t.insert(m, nil)
}

func (r *medicationRepo) GetByID(ctx context.Context, id int64) (medications.Medication, error) {
	m, ok := r.t.find(medicationID(id))
	if !ok {
		return medications.Medication{}, storage.ErrNotFound
	}
	return m, nil
}

func (r *medicationRepo) List(ctx context.Context, f medications.ListFilter) ([]medications.Medication, error) {
	items := r.t.filter(func(m medications.Medication) bool {
		if f.ActiveOnly && !m.IsActive {
			return false
		}
		return f.DrugClass == "" || m.DrugClass == f.DrugClass
	})
	return storage.Apply(items, f.Page), nil
}

// Search: recorrido lineal, mismo criterio que ILIKE '%q%'.
func (r *medicationRepo) Search(ctx context.Context, q string, limit int) ([]medications.Medication, error) {
	needle := strings.ToLower(q)
	items := r.t.filter(func(m medications.Medication) bool {
		return strings.Contains(strings.ToLower(m.Name), needle)
	})
	return storage.Apply(items, storage.Page{Limit: limit}), nil
}

func (r *medicationRepo) DrugClasses(ctx context.Context) ([]string, error) {
	items := r.t.filter(func(m medications.Medication) bool {
		return m.IsActive && m.DrugClass != ""
	})

	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, m := range items {
		if _, ok := seen[m.DrugClass]; ok {
			continue
		}
		seen[m.DrugClass] = struct{}{}
		out = append(out, m.DrugClass)
	}
	return out, nil
}

func (r *medicationRepo) Update(ctx context.Context, m medications.Medication) error {
	if !r.t.replace(medicationID(m.ID), m) {
		return storage.ErrNotFound
	}
	return nil
}

func (r *medicationRepo) Delete(ctx context.Context, id int64) error {
	if !r.t.remove(medicationID(id)) {
		return storage.ErrNotFound
	}
	return nil
}
