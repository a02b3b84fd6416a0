package storage

import "errors"

// Errores compartidos por los adapters de storage (memory y postgres).
// Los servicios de dominio los traducen a sus propios errores.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrReference = errors.New("reference violation")

	ErrNoMode          = errors.New("store mode not set in context")
	ErrModeUnavailable = errors.New("store mode not available")
)
