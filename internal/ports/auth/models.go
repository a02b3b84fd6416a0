package auth

import (
	"errors"
	"time"
)

// ErrInvalidToken agrupa firma inválida, payload mal formado, expiración
// y subject ausente. El caller no distingue entre esos casos.
var ErrInvalidToken = errors.New("invalid token")

// Claims representa la información extraída del token.
type Claims struct {
	DoctorID  int64
	TokenID   string
	ExpiresAt time.Time
}
