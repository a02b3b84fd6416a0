package patients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"clinical-rx/internal/middleware"
	"clinical-rx/internal/platform/logger"
	"clinical-rx/internal/ports/auth"
	"clinical-rx/internal/ports/storage"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(svc *Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, logger.Nop())
	return r
}

func call(t *testing.T, h http.Handler, ctx context.Context, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(ctx)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_NoClaimsIs401(t *testing.T) {
	svc, _, ctx := newTestService(t)
	h := newTestRouter(svc)

	rec := call(t, h, ctx, http.MethodGet, "/patients", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatalf("expected Bearer challenge")
	}
}

func TestHandler_CreateValidationIs400(t *testing.T) {
	svc, _, ctx := newTestService(t)
	h := newTestRouter(svc)
	ctx = middleware.WithClaims(ctx, auth.Claims{DoctorID: 7})

	rec := call(t, h, ctx, http.MethodPost, "/patients", `{"full_name":"X","age":-1,"gender":"male"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = call(t, h, ctx, http.MethodPost, "/patients", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed json, got %d", rec.Code)
	}
}

func TestHandler_DeleteBlockedIs409(t *testing.T) {
	svc, repo, ctx := newTestService(t)
	h := newTestRouter(svc)

	p := mustCreate(t, svc, ctx, 7, "Blocked")
	repo.deleteErr = storage.ErrReference

	ctx = middleware.WithClaims(ctx, auth.Claims{DoctorID: 7})
	rec := call(t, h, ctx, http.MethodDelete, "/patients/"+strconv.FormatInt(p.ID, 10), "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestHandler_BadIDIs404(t *testing.T) {
	svc, _, ctx := newTestService(t)
	h := newTestRouter(svc)
	ctx = middleware.WithClaims(ctx, auth.Claims{DoctorID: 7})

	for _, id := range []string{"abc", "0", "-3"} {
		rec := call(t, h, ctx, http.MethodGet, "/patients/"+id, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("id %q: expected 404, got %d", id, rec.Code)
		}
	}
}

func TestHandler_ModeUnavailableIs503(t *testing.T) {
	svc, _, _ := newTestService(t)
	h := newTestRouter(svc)

	ctx := storage.WithMode(context.Background(), storage.ModePostgres)
	ctx = middleware.WithClaims(ctx, auth.Claims{DoctorID: 7})

	rec := call(t, h, ctx, http.MethodGet, "/patients", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
