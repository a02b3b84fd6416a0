package patients

import (
	"time"

	"clinical-rx/internal/domain/clinical"
)

// Gender define el sexo registrado del paciente.
// @Enum male, female, other
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Patient pertenece siempre al doctor que lo creó (DoctorID).
type Patient struct {
	ID       int64
	DoctorID int64

	FullName string
	Age      int
	Gender   Gender

	Weight *float64 // kg, opcional
	Height *float64 // cm, opcional

	Phone     string
	Email     string
	Diagnosis string

	// Documentos semi-estructurados: se guardan tal cual llegan.
	Comorbidities          []string
	LabResults             clinical.Attributes
	CurrentMedications     []clinical.Attributes
	Allergies              []clinical.Attributes
	PreviousAnticoagulants []clinical.Attributes

	LifestyleFactors clinical.Attributes
	RiskFactors      clinical.Attributes
	SocialFactors    clinical.Attributes

	CreatedAt time.Time
	UpdatedAt time.Time
}
