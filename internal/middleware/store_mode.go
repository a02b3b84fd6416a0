package middleware

import (
	"net/http"

	"clinical-rx/internal/ports/storage"
)

// StoreMode fija el modo de storage en el contexto de cada request.
// El modo no cambia durante la vida del request.
func StoreMode(mode storage.Mode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(storage.WithMode(r.Context(), mode)))
		})
	}
}
