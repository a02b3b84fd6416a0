package doctors

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"clinical-rx/internal/middleware"
	"clinical-rx/internal/platform/httpx"
	"clinical-rx/internal/platform/logger"
	"clinical-rx/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, issuer auth.TokenIssuer, log logger.Logger) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, log))
		ar.Post("/login", loginHandler(svc, issuer, log))

		ar.Get("/me", meHandler(svc, log))
		ar.Put("/me", updateMeHandler(svc, log))
	})
}

type registerRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FullName       string `json:"full_name"`
	Specialty      string `json:"specialty"`
	Workplace      string `json:"workplace"`
	MedicalLicense string `json:"medical_license"`
	Phone          string `json:"phone"`
}

type updateProfileRequest struct {
	FullName       *string `json:"full_name"`
	Specialty      *string `json:"specialty"`
	Workplace      *string `json:"workplace"`
	MedicalLicense *string `json:"medical_license"`
	Phone          *string `json:"phone"`
}

// doctorResponse nunca incluye el hash del password.
type doctorResponse struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Specialty      string    `json:"specialty"`
	Workplace      string    `json:"workplace"`
	MedicalLicense string    `json:"medical_license"`
	Phone          string    `json:"phone"`
	IsActive       bool      `json:"is_active"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// registerHandler godoc
// @Summary Registrar doctor
// @Description Crea una cuenta de doctor. El email se compara sin normalizar (case-sensitive).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos del doctor"
// @Success 201 {object} doctorResponse
// @Failure 400 {object} httpx.ErrorBody "email ya registrado / datos inválidos"
// @Router /auth/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.Register(r.Context(), RegisterInput{
			Email:    req.Email,
			Password: req.Password,
			Profile: Profile{
				FullName:       req.FullName,
				Specialty:      req.Specialty,
				Workplace:      req.Workplace,
				MedicalLicense: req.MedicalLicense,
				Phone:          req.Phone,
			},
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		log.Info("doctor registered", map[string]any{"doctor_id": d.ID})
		httpx.WriteJSON(w, http.StatusCreated, toDoctorResponse(d))
	}
}

// loginHandler godoc
// @Summary Login
// @Description Formulario OAuth2 password (username = email). También acepta JSON con los mismos campos.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} httpx.ErrorBody "credenciales inválidas"
// @Router /auth/login [post]
func loginHandler(svc *Service, issuer auth.TokenIssuer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, password, err := loginCredentials(r)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		d, err := svc.Authenticate(r.Context(), username, password)
		if err != nil {
			writeError(w, log, err)
			return
		}

		tok, err := issuer.Issue(d.ID)
		if err != nil {
			log.Error("issue token failed", map[string]any{"doctor_id": d.ID, "err": err.Error()})
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, tokenResponse{AccessToken: tok, TokenType: "bearer"})
	}
}

func meHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		d, err := svc.GetByID(r.Context(), claims.DoctorID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.Unauthorized(w, "could not validate credentials")
				return
			}
			writeError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoctorResponse(d))
	}
}

func updateMeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		var req updateProfileRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		d, err := svc.UpdateProfile(r.Context(), claims.DoctorID, ProfileUpdate(req))
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toDoctorResponse(d))
	}
}

// loginCredentials lee username/password de un form o de JSON.
func loginCredentials(r *http.Request) (string, string, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var body struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return "", "", errors.New("invalid json")
		}
		if body.Username == "" {
			body.Username = body.Email
		}
		return body.Username, body.Password, nil
	}

	if err := r.ParseForm(); err != nil {
		return "", "", errors.New("invalid form")
	}
	return r.PostForm.Get("username"), r.PostForm.Get("password"), nil
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, "invalid input")
	case errors.Is(err, ErrDuplicateEmail):
		httpx.Error(w, http.StatusBadRequest, "email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		httpx.Unauthorized(w, "incorrect email or password")
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "doctor not found")
	default:
		httpx.StoreError(w, log, err)
	}
}

func toDoctorResponse(d Doctor) doctorResponse {
	return doctorResponse{
		ID:             d.ID,
		Email:          d.Email,
		FullName:       d.FullName,
		Specialty:      d.Specialty,
		Workplace:      d.Workplace,
		MedicalLicense: d.MedicalLicense,
		Phone:          d.Phone,
		IsActive:       d.IsActive,
		IsVerified:     d.IsVerified,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
