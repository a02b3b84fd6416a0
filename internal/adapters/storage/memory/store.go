// Package memory implementa el modo espejo: listas en proceso, sin foreign
// keys, con ids sorteados. Se usa para demo y desarrollo offline.
package memory

import (
	"clinical-rx/internal/domain/doctors"
	"clinical-rx/internal/domain/medications"
	"clinical-rx/internal/domain/patients"
	"clinical-rx/internal/domain/prescriptions"
)

// Store agrupa las cuatro listas. Cada lista tiene su propio lock.
type Store struct {
	doctors       *doctorRepo
	patients      *patientRepo
	medications   *medicationRepo
	prescriptions *prescriptionRepo
}

func NewStore() *Store {
	return &Store{
		doctors:       newDoctorRepo(),
		patients:      newPatientRepo(),
		medications:   newMedicationRepo(),
		prescriptions: newPrescriptionRepo(),
	}
}

func (s *Store) Doctors() doctors.Repository             { return s.doctors }
func (s *Store) Patients() patients.Repository           { return s.patients }
func (s *Store) Medications() medications.Repository     { return s.medications }
func (s *Store) Prescriptions() prescriptions.Repository { return s.prescriptions }
