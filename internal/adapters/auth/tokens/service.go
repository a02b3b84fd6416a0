package tokens

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clinical-rx/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrSecretRequired = errors.New("token secret required")
)

// Config del servicio de tokens.
type Config struct {
	Secret string
	// TTL por defecto de los tokens emitidos con Issue.
	TTL time.Duration
}

// Service emite y verifica tokens HS256 con subject = id del doctor.
// Implementa auth.AuthVerifier y auth.TokenIssuer.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(cfg Config) (*Service, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, ErrSecretRequired
	}
	ttl := cfg.TTL
	if ttl < 0 {
		ttl = 0
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *Service) TTL() time.Duration { return s.ttl }

// Issue emite un token con el TTL configurado.
func (s *Service) Issue(doctorID int64) (string, error) {
	return s.IssueFor(doctorID, s.ttl)
}

// IssueFor emite un token con un TTL explícito. TTL 0 produce un token
// que ya está vencido al verificarlo.
func (s *Service) IssueFor(doctorID int64, ttl time.Duration) (string, error) {
	if doctorID <= 0 {
		return "", fmt.Errorf("invalid doctor id %d", doctorID)
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(doctorID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	id, err := strconv.ParseInt(strings.TrimSpace(claims.Subject), 10, 64)
	if err != nil || id <= 0 {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	out := auth.Claims{
		DoctorID: id,
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
