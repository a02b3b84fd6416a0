package patients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinical-rx/internal/domain/clinical"
	"clinical-rx/internal/ports/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("patient not found")
	// ErrInUse: el store persistente no deja borrar un paciente con recetas.
	ErrInUse = errors.New("patient has prescriptions")
)

type Service struct {
	repos storage.Backends[Repository]
	now   func() time.Time
}

func NewService(repos storage.Backends[Repository]) *Service {
	return &Service{
		repos: repos,
		now:   time.Now,
	}
}

type CreateInput struct {
	FullName string
	Age      *int
	Gender   Gender

	Weight *float64
	Height *float64

	Phone     string
	Email     string
	Diagnosis string

	Comorbidities          []string
	LabResults             clinical.Attributes
	CurrentMedications     []clinical.Attributes
	Allergies              []clinical.Attributes
	PreviousAnticoagulants []clinical.Attributes

	LifestyleFactors clinical.Attributes
	RiskFactors      clinical.Attributes
	SocialFactors    clinical.Attributes
}

// Create asigna el paciente al doctor autenticado; nunca a uno enviado en el body.
func (s *Service) Create(ctx context.Context, doctorID int64, in CreateInput) (Patient, error) {
	if doctorID <= 0 {
		return Patient{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.FullName) == "" || in.Age == nil || *in.Age < 0 || !in.Gender.Valid() {
		return Patient{}, ErrInvalidInput
	}

	repo, err := s.repos.For(ctx)
	if err != nil {
		return Patient{}, err
	}

	now := s.now()
	p := Patient{
		DoctorID:               doctorID,
		FullName:               strings.TrimSpace(in.FullName),
		Age:                    *in.Age,
		Gender:                 in.Gender,
		Weight:                 in.Weight,
		Height:                 in.Height,
		Phone:                  strings.TrimSpace(in.Phone),
		Email:                  strings.TrimSpace(in.Email),
		Diagnosis:              strings.TrimSpace(in.Diagnosis),
		Comorbidities:          in.Comorbidities,
		LabResults:             in.LabResults,
		CurrentMedications:     in.CurrentMedications,
		Allergies:              in.Allergies,
		PreviousAnticoagulants: in.PreviousAnticoagulants,
		LifestyleFactors:       in.LifestyleFactors,
		RiskFactors:            in.RiskFactors,
		SocialFactors:          in.SocialFactors,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	created, err := repo.Create(ctx, p)
	if err != nil {
		return Patient{}, fmt.Errorf("create patient: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id, doctorID int64) (Patient, error) {
	repo, err := s.repos.For(ctx)
	if err != nil {
		return Patient{}, err
	}
	p, err := repo.GetByID(ctx, id, doctorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Patient{}, ErrNotFound
		}
		return Patient{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, doctorID int64, page storage.Page) ([]Patient, error) {
	repo, err := s.repos.For(ctx)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, doctorID, page.Normalize())
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	FullName *string
	Age      *int
	Gender   *Gender

	Weight *float64
	Height *float64

	Phone     *string
	Email     *string
	Diagnosis *string

	Comorbidities          *[]string
	LabResults             *clinical.Attributes
	CurrentMedications     *[]clinical.Attributes
	Allergies              *[]clinical.Attributes
	PreviousAnticoagulants *[]clinical.Attributes

	LifestyleFactors *clinical.Attributes
	RiskFactors      *clinical.Attributes
	SocialFactors    *clinical.Attributes
}

func (s *Service) Update(ctx context.Context, id, doctorID int64, in UpdateInput) (Patient, error) {
	if in.FullName != nil && strings.TrimSpace(*in.FullName) == "" {
		return Patient{}, ErrInvalidInput
	}
	if in.Age != nil && *in.Age < 0 {
		return Patient{}, ErrInvalidInput
	}
	if in.Gender != nil && !in.Gender.Valid() {
		return Patient{}, ErrInvalidInput
	}

	repo, err := s.repos.For(ctx)
	if err != nil {
		return Patient{}, err
	}

	p, err := s.Get(ctx, id, doctorID)
	if err != nil {
		return Patient{}, err
	}

	if clinical.Patch(&p.FullName, in.FullName) {
		p.FullName = strings.TrimSpace(p.FullName)
	}
	clinical.Patch(&p.Age, in.Age)
	clinical.Patch(&p.Gender, in.Gender)
	if in.Weight != nil {
		p.Weight = in.Weight
	}
	if in.Height != nil {
		p.Height = in.Height
	}
	clinical.Patch(&p.Phone, in.Phone)
	clinical.Patch(&p.Email, in.Email)
	clinical.Patch(&p.Diagnosis, in.Diagnosis)
	clinical.Patch(&p.Comorbidities, in.Comorbidities)
	clinical.Patch(&p.LabResults, in.LabResults)
	clinical.Patch(&p.CurrentMedications, in.CurrentMedications)
	clinical.Patch(&p.Allergies, in.Allergies)
	clinical.Patch(&p.PreviousAnticoagulants, in.PreviousAnticoagulants)
	clinical.Patch(&p.LifestyleFactors, in.LifestyleFactors)
	clinical.Patch(&p.RiskFactors, in.RiskFactors)
	clinical.Patch(&p.SocialFactors, in.SocialFactors)
	p.UpdatedAt = s.now()

	if err := repo.Update(ctx, p); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Patient{}, ErrNotFound
		}
		return Patient{}, fmt.Errorf("update patient: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id, doctorID int64) error {
	repo, err := s.repos.For(ctx)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, id, doctorID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return ErrNotFound
		case errors.Is(err, storage.ErrReference):
			return ErrInUse
		}
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}
