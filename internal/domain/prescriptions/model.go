package prescriptions

import (
	"time"

	"clinical-rx/internal/domain/clinical"
)

// RecommendedMedication es un ítem de la receta. MedicationID es opcional:
// puede recomendarse algo que no está en el formulario.
type RecommendedMedication struct {
	MedicationID  *int64 `json:"id,omitempty"`
	Name          string `json:"name"`
	Dosage        string `json:"dosage,omitempty"`
	Frequency     string `json:"frequency,omitempty"`
	Duration      string `json:"duration,omitempty"`
	EvidenceLevel string `json:"evidence_level,omitempty"`
	Justification string `json:"justification,omitempty"`
}

// Prescription pertenece al doctor que la creó y apunta a un paciente suyo.
type Prescription struct {
	ID        int64
	PatientID int64
	DoctorID  int64

	Diagnosis              string
	RecommendedMedications []RecommendedMedication
	Dosage                 clinical.Attributes
	Duration               string
	Instructions           string

	AIRecommendations  clinical.Attributes
	Justification      string
	AlternativeOptions []clinical.Attributes
	Warnings           []string
	MonitoringPlan     clinical.Attributes

	PatientFeedback string
	DoctorNotes     string

	Status        Status
	IsAIGenerated bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
