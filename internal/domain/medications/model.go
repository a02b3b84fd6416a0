package medications

import "time"

// Las sub-estructuras llevan tags JSON porque se persisten como documento
// (columna TEXT en postgres) además de salir por la API.

type DrugInteraction struct {
	Medication  string `json:"medication"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Management  string `json:"management"`
}

type MonitoringParameter struct {
	Parameter      string `json:"parameter"`
	Frequency      string `json:"frequency"`
	NormalRange    string `json:"normal_range"`
	CriticalValues string `json:"critical_values"`
}

type TherapeuticRange struct {
	Parameter string  `json:"parameter,omitempty"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Unit      string  `json:"unit,omitempty"`
}

// Medication es global: no pertenece a ningún doctor.
type Medication struct {
	ID int64

	Name              string
	GenericName       string
	DrugClass         string
	MechanismOfAction string

	AvailableDosages  []string
	Indications       []string
	Contraindications []string
	SideEffects       []string

	DrugInteractions     []DrugInteraction
	MonitoringParameters []MonitoringParameter
	TherapeuticRange     *TherapeuticRange

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
