package patients

import (
	"errors"
	"net/http"
	"time"

	"clinical-rx/internal/domain/clinical"
	"clinical-rx/internal/middleware"
	"clinical-rx/internal/platform/httpx"
	"clinical-rx/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/patients", func(pr chi.Router) {
		pr.Post("/", createPatientHandler(svc, log))
		pr.Get("/", listPatientsHandler(svc, log))

		pr.Get("/{patientID}", getPatientHandler(svc, log))
		pr.Put("/{patientID}", updatePatientHandler(svc, log))
		pr.Delete("/{patientID}", deletePatientHandler(svc, log))
	})
}

// createPatientRequest ignora cualquier doctor_id del body.
type createPatientRequest struct {
	FullName  string   `json:"full_name"`
	Age       *int     `json:"age"`
	Gender    string   `json:"gender"`
	Weight    *float64 `json:"weight"`
	Height    *float64 `json:"height"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Diagnosis string   `json:"diagnosis"`

	Comorbidities          []string              `json:"comorbidities"`
	LabResults             clinical.Attributes   `json:"lab_results"`
	CurrentMedications     []clinical.Attributes `json:"current_medications"`
	Allergies              []clinical.Attributes `json:"allergies"`
	PreviousAnticoagulants []clinical.Attributes `json:"previous_anticoagulants"`
	LifestyleFactors       clinical.Attributes   `json:"lifestyle_factors"`
	RiskFactors            clinical.Attributes   `json:"risk_factors"`
	SocialFactors          clinical.Attributes   `json:"social_factors"`
}

type updatePatientRequest struct {
	// Punteros: nil = no tocar.
	FullName  *string  `json:"full_name"`
	Age       *int     `json:"age"`
	Gender    *Gender  `json:"gender"`
	Weight    *float64 `json:"weight"`
	Height    *float64 `json:"height"`
	Phone     *string  `json:"phone"`
	Email     *string  `json:"email"`
	Diagnosis *string  `json:"diagnosis"`

	Comorbidities          *[]string              `json:"comorbidities"`
	LabResults             *clinical.Attributes   `json:"lab_results"`
	CurrentMedications     *[]clinical.Attributes `json:"current_medications"`
	Allergies              *[]clinical.Attributes `json:"allergies"`
	PreviousAnticoagulants *[]clinical.Attributes `json:"previous_anticoagulants"`
	LifestyleFactors       *clinical.Attributes   `json:"lifestyle_factors"`
	RiskFactors            *clinical.Attributes   `json:"risk_factors"`
	SocialFactors          *clinical.Attributes   `json:"social_factors"`
}

type patientResponse struct {
	ID        int64    `json:"id"`
	DoctorID  int64    `json:"doctor_id"`
	FullName  string   `json:"full_name"`
	Age       int      `json:"age"`
	Gender    Gender   `json:"gender"`
	Weight    *float64 `json:"weight"`
	Height    *float64 `json:"height"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Diagnosis string   `json:"diagnosis"`

	Comorbidities          []string              `json:"comorbidities"`
	LabResults             clinical.Attributes   `json:"lab_results"`
	CurrentMedications     []clinical.Attributes `json:"current_medications"`
	Allergies              []clinical.Attributes `json:"allergies"`
	PreviousAnticoagulants []clinical.Attributes `json:"previous_anticoagulants"`
	LifestyleFactors       clinical.Attributes   `json:"lifestyle_factors"`
	RiskFactors            clinical.Attributes   `json:"risk_factors"`
	SocialFactors          clinical.Attributes   `json:"social_factors"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createPatientHandler godoc
// @Summary Crear paciente
// @Tags patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body createPatientRequest true "Paciente"
// @Success 201 {object} patientResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Router /patients [post]
func createPatientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		var req createPatientRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), claims.DoctorID, CreateInput{
			FullName:               req.FullName,
			Age:                    req.Age,
			Gender:                 Gender(req.Gender),
			Weight:                 req.Weight,
			Height:                 req.Height,
			Phone:                  req.Phone,
			Email:                  req.Email,
			Diagnosis:              req.Diagnosis,
			Comorbidities:          req.Comorbidities,
			LabResults:             req.LabResults,
			CurrentMedications:     req.CurrentMedications,
			Allergies:              req.Allergies,
			PreviousAnticoagulants: req.PreviousAnticoagulants,
			LifestyleFactors:       req.LifestyleFactors,
			RiskFactors:            req.RiskFactors,
			SocialFactors:          req.SocialFactors,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toPatientResponse(p))
	}
}

// listPatientsHandler godoc
// @Summary Listar pacientes del doctor
// @Tags patients
// @Security BearerAuth
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Máximo" default(100)
// @Success 200 {array} patientResponse
// @Router /patients [get]
func listPatientsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		page, err := httpx.PageFromQuery(r)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.List(r.Context(), claims.DoctorID, page)
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]patientResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPatientResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getPatientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		id, ok := httpx.IDParam(r, "patientID")
		if !ok {
			httpx.Error(w, http.StatusNotFound, "patient not found")
			return
		}

		p, err := svc.Get(r.Context(), id, claims.DoctorID)
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

func updatePatientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		id, ok := httpx.IDParam(r, "patientID")
		if !ok {
			httpx.Error(w, http.StatusNotFound, "patient not found")
			return
		}

		var req updatePatientRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), id, claims.DoctorID, UpdateInput(req))
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPatientResponse(p))
	}
}

func deletePatientHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		id, ok := httpx.IDParam(r, "patientID")
		if !ok {
			httpx.Error(w, http.StatusNotFound, "patient not found")
			return
		}

		if err := svc.Delete(r.Context(), id, claims.DoctorID); err != nil {
			writeError(w, log, err)
			return
		}
		httpx.Message(w, http.StatusOK, "patient deleted")
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, "invalid input: full_name, age >= 0 and gender (male|female|other) are required")
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "patient not found")
	case errors.Is(err, ErrInUse):
		httpx.Error(w, http.StatusConflict, "patient has prescriptions")
	default:
		httpx.StoreError(w, log, err)
	}
}

func toPatientResponse(p Patient) patientResponse {
	return patientResponse{
		ID:                     p.ID,
		DoctorID:               p.DoctorID,
		FullName:               p.FullName,
		Age:                    p.Age,
		Gender:                 p.Gender,
		Weight:                 p.Weight,
		Height:                 p.Height,
		Phone:                  p.Phone,
		Email:                  p.Email,
		Diagnosis:              p.Diagnosis,
		Comorbidities:          p.Comorbidities,
		LabResults:             p.LabResults,
		CurrentMedications:     p.CurrentMedications,
		Allergies:              p.Allergies,
		PreviousAnticoagulants: p.PreviousAnticoagulants,
		LifestyleFactors:       p.LifestyleFactors,
		RiskFactors:            p.RiskFactors,
		SocialFactors:          p.SocialFactors,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}
