package medications

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"clinical-rx/internal/domain/clinical"
	"clinical-rx/internal/ports/storage"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medication not found")
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
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Medication, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Medication{}, ErrInvalidInput
	}

	repo, err := s.repos.For(ctx)
	if err != nil {
		return Medication{}, err
	}

	now := s.now()
	m := Medication{
		Name:                 strings.TrimSpace(in.Name),
		GenericName:          strings.TrimSpace(in.GenericName),
		DrugClass:            strings.TrimSpace(in.DrugClass),
		MechanismOfAction:    in.MechanismOfAction,
		AvailableDosages:     in.AvailableDosages,
		Indications:          in.Indications,
		Contraindications:    in.Contraindications,
		SideEffects:          in.SideEffects,
		DrugInteractions:     in.DrugInteractions,
		MonitoringParameters: in.MonitoringParameters,
		TherapeuticRange:     in.TherapeuticRange,
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := repo.Create(ctx, m)
	if err != nil {
		return Medication{}, fmt.Errorf("create medication: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Medication, error) {
	repo, err := s.repos.For(ctx)
	if err != nil {
		return Medication{}, err
	}
	m, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Medication{}, ErrNotFound
		}
		return Medication{}, err
	}
	return m, nil
}

// List devuelve solo medicamentos activos, opcionalmente de una clase.
func (s *Service) List(ctx context.Context, page storage.Page, drugClass string) ([]Medication, error) {
	repo, err := s.repos.For(ctx)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, ListFilter{
		Page:       page.Normalize(),
		DrugClass:  strings.TrimSpace(drugClass),
		ActiveOnly: true,
	})
}

// Search: limit 0 usa DefaultSearchLimit.
func (s *Service) Search(ctx context.Context, q string, limit int) ([]Medication, error) {
	if strings.TrimSpace(q) == "" {
		return nil, ErrInvalidInput
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	if limit < 1 || limit > MaxSearchLimit {
		return nil, ErrInvalidInput
	}

	repo, err := s.repos.For(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Search(ctx, q, limit)
}

// DrugClasses ordena el resultado para que ambos modos respondan igual.
func (s *Service) DrugClasses(ctx context.Context) ([]string, error) {
	repo, err := s.repos.For(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := repo.DrugClasses(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name              *string
	GenericName       *string
	DrugClass         *string
	MechanismOfAction *string

	AvailableDosages  *[]string
	Indications       *[]string
	Contraindications *[]string
	SideEffects       *[]string

	DrugInteractions     *[]DrugInteraction
	MonitoringParameters *[]MonitoringParameter
	TherapeuticRange     *TherapeuticRange

	IsActive *bool
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Medication, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return Medication{}, ErrInvalidInput
	}

	repo, err := s.repos.For(ctx)
	if err != nil {
		return Medication{}, err
	}

	m, err := s.Get(ctx, id)
	if err != nil {
		return Medication{}, err
	}

	if clinical.Patch(&m.Name, in.Name) {
		m.Name = strings.TrimSpace(m.Name)
	}
	clinical.Patch(&m.GenericName, in.GenericName)
	clinical.Patch(&m.DrugClass, in.DrugClass)
	clinical.Patch(&m.MechanismOfAction, in.MechanismOfAction)
	clinical.Patch(&m.AvailableDosages, in.AvailableDosages)
	clinical.Patch(&m.Indications, in.Indications)
	clinical.Patch(&m.Contraindications, in.Contraindications)
	clinical.Patch(&m.SideEffects, in.SideEffects)
	clinical.Patch(&m.DrugInteractions, in.DrugInteractions)
	clinical.Patch(&m.MonitoringParameters, in.MonitoringParameters)
	if in.TherapeuticRange != nil {
		m.TherapeuticRange = in.TherapeuticRange
	}
	clinical.Patch(&m.IsActive, in.IsActive)
	m.UpdatedAt = s.now()

	if err := repo.Update(ctx, m); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Medication{}, ErrNotFound
		}
		return Medication{}, fmt.Errorf("update medication: %w", err)
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	repo, err := s.repos.For(ctx)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete medication: %w", err)
	}
	return nil
}
