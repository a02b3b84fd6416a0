package prescriptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinical-rx/internal/domain/clinical"
	"clinical-rx/internal/domain/patients"
	"clinical-rx/internal/ports/storage"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("prescription not found")
	ErrPatientNotFound = errors.New("patient not found")
)

// PatientLookup lo implementa patients.Service.
type PatientLookup interface {
	EnsureOwned(ctx context.Context, patientID, doctorID int64) error
}

type Service struct {
	repos    storage.Backends[Repository]
	patients PatientLookup
	now      func() time.Time
}

func NewService(repos storage.Backends[Repository], lookup PatientLookup) *Service {
	return &Service{
		repos:    repos,
		patients: lookup,
		now:      time.Now,
	}
}

type CreateInput struct {
	PatientID int64

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

	DoctorNotes string

	Status        Status // vacío = draft
	IsAIGenerated *bool  // nil = true
}

// Create verifica que el paciente sea del doctor antes de insertar.
// La verificación y el insert no son atómicos.
func (s *Service) Create(ctx context.Context, doctorID int64, in CreateInput) (Prescription, error) {
	if doctorID <= 0 || in.PatientID <= 0 {
		return Prescription{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = StatusDraft
	}
	if !status.Valid() {
		return Prescription{}, ErrInvalidInput
	}

	aiGenerated := true
	if in.IsAIGenerated != nil {
		aiGenerated = *in.IsAIGenerated
	}

	repo, err := s.repos.For(ctx)
	if err != nil {
		return Prescription{}, err
	}

	if s.patients != nil {
		if err := s.patients.EnsureOwned(ctx, in.PatientID, doctorID); err != nil {
			if errors.Is(err, patients.ErrNotFound) {
				return Prescription{}, ErrPatientNotFound
			}
			return Prescription{}, err
		}
	}

	now := s.now()
	p := Prescription{
		PatientID:              in.PatientID,
		DoctorID:               doctorID,
		Diagnosis:              strings.TrimSpace(in.Diagnosis),
		RecommendedMedications: in.RecommendedMedications,
		Dosage:                 in.Dosage,
		Duration:               strings.TrimSpace(in.Duration),
		Instructions:           in.Instructions,
		AIRecommendations:      in.AIRecommendations,
		Justification:          in.Justification,
		AlternativeOptions:     in.AlternativeOptions,
		Warnings:               in.Warnings,
		MonitoringPlan:         in.MonitoringPlan,
		DoctorNotes:            in.DoctorNotes,
		Status:                 status,
		IsAIGenerated:          aiGenerated,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	created, err := repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, storage.ErrReference) {
			return Prescription{}, ErrPatientNotFound
		}
		return Prescription{}, fmt.Errorf("create prescription: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id, doctorID int64) (Prescription, error) {
	repo, err := s.repos.For(ctx)
	if err != nil {
		return Prescription{}, err
	}
	p, err := repo.GetByID(ctx, id, doctorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Prescription{}, ErrNotFound
		}
		return Prescription{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, doctorID int64, f ListFilter) ([]Prescription, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrInvalidInput
	}
	repo, err := s.repos.For(ctx)
	if err != nil {
		return nil, err
	}
	f.Page = f.Page.Normalize()
	return repo.List(ctx, doctorID, f)
}

// UpdateInput: nil = no tocar. El paciente de una receta no cambia.
type UpdateInput struct {
	Diagnosis              *string
	RecommendedMedications *[]RecommendedMedication
	Dosage                 *clinical.Attributes
	Duration               *string
	Instructions           *string

	AIRecommendations  *clinical.Attributes
	Justification      *string
	AlternativeOptions *[]clinical.Attributes
	Warnings           *[]string
	MonitoringPlan     *clinical.Attributes

	PatientFeedback *string
	DoctorNotes     *string

	Status *Status
}

func (s *Service) Update(ctx context.Context, id, doctorID int64, in UpdateInput) (Prescription, error) {
	if in.Status != nil && !in.Status.Valid() {
		return Prescription{}, ErrInvalidInput
	}

	repo, err := s.repos.For(ctx)
	if err != nil {
		return Prescription{}, err
	}

	p, err := s.Get(ctx, id, doctorID)
	if err != nil {
		return Prescription{}, err
	}

	clinical.Patch(&p.Diagnosis, in.Diagnosis)
	clinical.Patch(&p.RecommendedMedications, in.RecommendedMedications)
	clinical.Patch(&p.Dosage, in.Dosage)
	clinical.Patch(&p.Duration, in.Duration)
	clinical.Patch(&p.Instructions, in.Instructions)
	clinical.Patch(&p.AIRecommendations, in.AIRecommendations)
	clinical.Patch(&p.Justification, in.Justification)
	clinical.Patch(&p.AlternativeOptions, in.AlternativeOptions)
	clinical.Patch(&p.Warnings, in.Warnings)
	clinical.Patch(&p.MonitoringPlan, in.MonitoringPlan)
	clinical.Patch(&p.PatientFeedback, in.PatientFeedback)
	clinical.Patch(&p.DoctorNotes, in.DoctorNotes)
	clinical.Patch(&p.Status, in.Status)
	p.UpdatedAt = s.now()

	if err := repo.Update(ctx, p); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Prescription{}, ErrNotFound
		}
		return Prescription{}, fmt.Errorf("update prescription: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id, doctorID int64) error {
	repo, err := s.repos.For(ctx)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, id, doctorID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete prescription: %w", err)
	}
	return nil
}
