package patients

import (
	"context"

	"clinical-rx/internal/ports/storage"
)

// Repository: todas las lecturas y escrituras van acotadas por doctorID.
// Un paciente de otro doctor es indistinguible de uno inexistente
// (storage.ErrNotFound).
type Repository interface {
	Create(ctx context.Context, p Patient) (Patient, error)
	GetByID(ctx context.Context, id, doctorID int64) (Patient, error)
	List(ctx context.Context, doctorID int64, page storage.Page) ([]Patient, error)
	Update(ctx context.Context, p Patient) error
	// Delete devuelve storage.ErrReference si la DB bloquea el borrado
	// (recetas que apuntan al paciente).
	Delete(ctx context.Context, id, doctorID int64) error
}
