package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinical-rx/internal/platform/httpx"
	"clinical-rx/internal/platform/logger"
	"clinical-rx/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// DoctorLookup confirma que el subject del token sigue existiendo en el
// store del modo actual.
type DoctorLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// AuthContext:
// - Si viene Bearer token válido y el doctor existe => setea claims.
// - Token ausente o inválido => el request sigue sin claims; los handlers
//   protegidos responden 401 con RequireClaims.
// - Error del store al resolver el doctor => 503/500, no se puede decidir.
func AuthContext(verifier auth.AuthVerifier, doctors DoctorLookup, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" || verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			if doctors != nil {
				ok, err := doctors.Exists(r.Context(), claims.DoctorID)
				if err != nil {
					log.Error("auth: doctor lookup failed", map[string]any{
						"doctor_id": claims.DoctorID,
						"err":       err.Error(),
					})
					httpx.StoreError(w, nil, err)
					return
				}
				if !ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok && c.DoctorID > 0
}

// WithClaims se usa en tests de handlers.
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// RequireClaims responde 401 con challenge si el request no está autenticado.
func RequireClaims(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	c, ok := GetClaims(r.Context())
	if !ok {
		httpx.Unauthorized(w, "could not validate credentials")
		return auth.Claims{}, false
	}
	return c, true
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
