package tokens

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinical-rx/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(Config{Secret: "test-secret", TTL: 30 * time.Minute})
	require.NoError(t, err)
	return svc
}

func TestIssueAndVerify_RoundTripsSubject(t *testing.T) {
	svc := newTestService(t)

	tok, err := svc.Issue(42)
	require.NoError(t, err)

	claims, err := svc.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.DoctorID)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt, 2*time.Second)
}

func TestVerify_ZeroTTLIsRejectedImmediately(t *testing.T) {
	svc := newTestService(t)

	tok, err := svc.IssueFor(7, 0)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), tok)
	assert.True(t, errors.Is(err, auth.ErrInvalidToken), "got %v", err)
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := newTestService(t)
	tok, err := svc.Issue(7)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(31 * time.Minute) }

	_, err = svc.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := newTestService(t)
	other, err := NewService(Config{Secret: "another-secret", TTL: time.Minute})
	require.NoError(t, err)

	tok, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = other.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_MalformedAndMissingSubject(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Verify(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Verify(context.Background(), "")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := noSub.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	badSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "doctor-one",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err = badSub.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestService(t)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestNewService_RequiresSecret(t *testing.T) {
	_, err := NewService(Config{Secret: "  "})
	assert.ErrorIs(t, err, ErrSecretRequired)
}
