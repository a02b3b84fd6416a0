package patients

import (
	"context"
	"errors"
)

// EnsureOwned confirma que el paciente existe y es del doctor.
// Lo usa prescriptions antes de crear una receta; evita que prescriptions
// importe el Repository de pacientes.
func (s *Service) EnsureOwned(ctx context.Context, patientID, doctorID int64) error {
	_, err := s.Get(ctx, patientID, doctorID)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	return err
}
