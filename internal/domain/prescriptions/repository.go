package prescriptions

import (
	"context"

	"clinical-rx/internal/ports/storage"
)

// ListFilter: PatientID nil y Status vacío = sin filtro.
type ListFilter struct {
	Page      storage.Page
	PatientID *int64
	Status    Status
}

// Repository acota todo por doctorID, igual que patients.
type Repository interface {
	Create(ctx context.Context, p Prescription) (Prescription, error)
	GetByID(ctx context.Context, id, doctorID int64) (Prescription, error)
	List(ctx context.Context, doctorID int64, f ListFilter) ([]Prescription, error)
	Update(ctx context.Context, p Prescription) error
	Delete(ctx context.Context, id, doctorID int64) error
}
