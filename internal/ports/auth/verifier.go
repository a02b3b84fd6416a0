package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o ErrInvalidToken.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite tokens firmados para un doctor.
type TokenIssuer interface {
	Issue(doctorID int64) (string, error)
}
