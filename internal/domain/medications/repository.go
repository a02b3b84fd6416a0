package medications

import (
	"context"

	"clinical-rx/internal/ports/storage"
)

// ListFilter: filtros por igualdad; DrugClass vacío = sin filtro.
type ListFilter struct {
	Page       storage.Page
	DrugClass  string
	ActiveOnly bool
}

type Repository interface {
	Create(ctx context.Context, m Medication) (Medication, error)
	GetByID(ctx context.Context, id int64) (Medication, error)
	List(ctx context.Context, f ListFilter) ([]Medication, error)

	// Search busca q como substring del nombre, sin distinguir mayúsculas.
	// No filtra por IsActive.
	Search(ctx context.Context, q string, limit int) ([]Medication, error)

	// DrugClasses devuelve las clases no vacías de medicamentos activos,
	// sin repetir y en cualquier orden.
	DrugClasses(ctx context.Context) ([]string, error)

	Update(ctx context.Context, m Medication) error
	Delete(ctx context.Context, id int64) error
}
