package doctors

import "context"

// Repository es el credential store. Create asigna el ID y devuelve
// storage.ErrConflict si el email ya existe.
type Repository interface {
	Create(ctx context.Context, d Doctor) (Doctor, error)
	GetByID(ctx context.Context, id int64) (Doctor, error)
	GetByEmail(ctx context.Context, email string) (Doctor, error)
	Update(ctx context.Context, d Doctor) error
}
