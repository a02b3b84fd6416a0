package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinical-rx/internal/platform/logger"
	"clinical-rx/internal/ports/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageFromQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/patients?skip=2&limit=5", nil)
	p, err := PageFromQuery(r)
	require.NoError(t, err)
	assert.Equal(t, storage.Page{Skip: 2, Limit: 5}, p)

	r = httptest.NewRequest(http.MethodGet, "/patients", nil)
	p, err = PageFromQuery(r)
	require.NoError(t, err)
	assert.Equal(t, storage.Page{Skip: 0, Limit: storage.DefaultLimit}, p)

	for _, bad := range []string{"/x?skip=-1", "/x?limit=0", "/x?limit=abc", "/x?limit=100000"} {
		_, err := PageFromQuery(httptest.NewRequest(http.MethodGet, bad, nil))
		assert.Error(t, err, bad)
	}
}

func TestUnauthorized_SetsChallenge(t *testing.T) {
	rec := httptest.NewRecorder()
	Unauthorized(rec, "could not validate credentials")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"could not validate credentials"}`, rec.Body.String())
}

func TestStoreError_ModeUnavailableIs503(t *testing.T) {
	rec := httptest.NewRecorder()
	StoreError(rec, nil, fmt.Errorf("%w: postgres", storage.ErrModeUnavailable))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	StoreError(rec, logger.Nop(), errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"internal error"}`, rec.Body.String())
}
