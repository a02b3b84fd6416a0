package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"clinical-rx/internal/platform/logger"
	"clinical-rx/internal/ports/storage"

	"github.com/go-chi/chi/v5"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type ErrorBody struct {
	Detail string `json:"detail"`
}

// Error responde {"detail": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorBody{Detail: msg})
}

// StoreError cubre los errores que no son de dominio: modo de storage no
// disponible (503) o cualquier otra falla (500, logueada).
func StoreError(w http.ResponseWriter, log logger.Logger, err error) {
	if errors.Is(err, storage.ErrModeUnavailable) || errors.Is(err, storage.ErrNoMode) {
		Error(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	if log != nil {
		log.Error("request failed", map[string]any{"err": err.Error()})
	}
	Error(w, http.StatusInternalServerError, "internal error")
}

// Unauthorized agrega el challenge Bearer.
func Unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	Error(w, http.StatusUnauthorized, msg)
}

type MessageBody struct {
	Message string `json:"message"`
}

func Message(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, MessageBody{Message: msg})
}

// DecodeJSON decodifica el body. Campos desconocidos se ignoran.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// IDParam lee un id entero positivo de la URL.
func IDParam(r *http.Request, name string) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// PageFromQuery lee skip/limit. Ausentes usan 0 y storage.DefaultLimit.
func PageFromQuery(r *http.Request) (storage.Page, error) {
	q := r.URL.Query()
	p := storage.Page{Skip: 0, Limit: storage.DefaultLimit}

	if v := strings.TrimSpace(q.Get("skip")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return storage.Page{}, errors.New("skip must be a non-negative integer")
		}
		p.Skip = n
	}
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > storage.MaxLimit {
			return storage.Page{}, fmt.Errorf("limit must be between 1 and %d", storage.MaxLimit)
		}
		p.Limit = n
	}
	return p, nil
}

// QueryInt64 lee un entero opcional del query string.
func QueryInt64(r *http.Request, name string) (*int64, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &n, nil
}
