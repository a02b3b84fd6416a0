package doctors

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"clinical-rx/internal/domain/clinical"
	"clinical-rx/internal/ports/storage"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("doctor not found")
)

// PasswordHasher es opaco para el dominio.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

type Service struct {
	repos  storage.Backends[Repository]
	hasher PasswordHasher
	now    func() time.Time
}

func NewService(repos storage.Backends[Repository], hasher PasswordHasher) *Service {
	return &Service{
		repos:  repos,
		hasher: hasher,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Profile  Profile
}

// Register crea la cuenta. El email se compara tal cual (case-sensitive).
func (s *Service) Register(ctx context.Context, in RegisterInput) (Doctor, error) {
	if !validEmail(in.Email) || in.Password == "" {
		return Doctor{}, ErrInvalidInput
	}

	repo, err := s.repos.For(ctx)
	if err != nil {
		return Doctor{}, err
	}

	if _, err := repo.GetByEmail(ctx, in.Email); err == nil {
		return Doctor{}, ErrDuplicateEmail
	} else if !errors.Is(err, storage.ErrNotFound) {
		return Doctor{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Doctor{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	d := Doctor{
		Email:        in.Email,
		PasswordHash: hash,
		Profile:      trimProfile(in.Profile),
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := repo.Create(ctx, d)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return Doctor{}, ErrDuplicateEmail
		}
		return Doctor{}, err
	}
	return created, nil
}

// Authenticate no distingue email desconocido, password incorrecto o cuenta inactiva.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Doctor, error) {
	if email == "" || password == "" {
		return Doctor{}, ErrInvalidCredentials
	}

	repo, err := s.repos.For(ctx)
	if err != nil {
		return Doctor{}, err
	}

	d, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Doctor{}, ErrInvalidCredentials
		}
		return Doctor{}, err
	}
	if !d.IsActive || !s.hasher.Verify(d.PasswordHash, password) {
		return Doctor{}, ErrInvalidCredentials
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Doctor, error) {
	if id <= 0 {
		return Doctor{}, ErrNotFound
	}
	repo, err := s.repos.For(ctx)
	if err != nil {
		return Doctor{}, err
	}
	d, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Doctor{}, ErrNotFound
		}
		return Doctor{}, err
	}
	return d, nil
}

// Exists lo usa el middleware de auth para confirmar el subject del token.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return d.IsActive, nil
}

// ProfileUpdate: nil = no tocar.
type ProfileUpdate struct {
	FullName       *string
	Specialty      *string
	Workplace      *string
	MedicalLicense *string
	Phone          *string
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, in ProfileUpdate) (Doctor, error) {
	repo, err := s.repos.For(ctx)
	if err != nil {
		return Doctor{}, err
	}

	d, err := s.GetByID(ctx, id)
	if err != nil {
		return Doctor{}, err
	}

	clinical.Patch(&d.FullName, in.FullName)
	clinical.Patch(&d.Specialty, in.Specialty)
	clinical.Patch(&d.Workplace, in.Workplace)
	clinical.Patch(&d.MedicalLicense, in.MedicalLicense)
	clinical.Patch(&d.Phone, in.Phone)
	d.Profile = trimProfile(d.Profile)
	d.UpdatedAt = s.now()

	if err := repo.Update(ctx, d); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Doctor{}, ErrNotFound
		}
		return Doctor{}, err
	}
	return d, nil
}

func validEmail(email string) bool {
	if strings.TrimSpace(email) != email || email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func trimProfile(p Profile) Profile {
	return Profile{
		FullName:       strings.TrimSpace(p.FullName),
		Specialty:      strings.TrimSpace(p.Specialty),
		Workplace:      strings.TrimSpace(p.Workplace),
		MedicalLicense: strings.TrimSpace(p.MedicalLicense),
		Phone:          strings.TrimSpace(p.Phone),
	}
}
