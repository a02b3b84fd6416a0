package storage

import (
	"context"
	"fmt"
	"strings"
)

// Mode indica qué backend atiende un request.
type Mode string

const (
	ModeMemory   Mode = "memory"
	ModePostgres Mode = "postgres"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeMemory, "mock", "mirror":
		return ModeMemory, nil
	case ModePostgres, "postgresql", "db":
		return ModePostgres, nil
	default:
		return "", fmt.Errorf("unknown store mode %q", s)
	}
}

type ctxKey struct{}

// WithMode fija el modo para todo lo que se ejecute con ctx.
func WithMode(ctx context.Context, m Mode) context.Context {
	return context.WithValue(ctx, ctxKey{}, m)
}

func ModeFrom(ctx context.Context) (Mode, bool) {
	m, ok := ctx.Value(ctxKey{}).(Mode)
	return m, ok && m != ""
}

// Backends agrupa las dos implementaciones de un mismo Repository.
// Postgres puede quedar vacío cuando no hay DB configurada.
type Backends[R any] struct {
	Memory   R
	Postgres R
}

// For resuelve el repositorio según el modo del contexto.
func (b Backends[R]) For(ctx context.Context) (R, error) {
	var zero R

	m, ok := ModeFrom(ctx)
	if !ok {
		return zero, ErrNoMode
	}

	var repo R
	switch m {
	case ModeMemory:
		repo = b.Memory
	case ModePostgres:
		repo = b.Postgres
	default:
		return zero, fmt.Errorf("%w: %s", ErrModeUnavailable, m)
	}

	if any(repo) == nil {
		return zero, fmt.Errorf("%w: %s", ErrModeUnavailable, m)
	}
	return repo, nil
}
