package prescriptions

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
	r.Route("/prescriptions", func(pr chi.Router) {
		pr.Post("/", createPrescriptionHandler(svc, log))
		pr.Get("/", listPrescriptionsHandler(svc, log))

		pr.Get("/{prescriptionID}", getPrescriptionHandler(svc, log))
		pr.Put("/{prescriptionID}", updatePrescriptionHandler(svc, log))
		pr.Delete("/{prescriptionID}", deletePrescriptionHandler(svc, log))
	})
}

type createPrescriptionRequest struct {
	PatientID int64 `json:"patient_id"`

	Diagnosis              string                  `json:"diagnosis"`
	RecommendedMedications []RecommendedMedication `json:"recommended_medications"`
	Dosage                 clinical.Attributes     `json:"dosage"`
	Duration               string                  `json:"duration"`
	Instructions           string                  `json:"instructions"`

	AIRecommendations  clinical.Attributes   `json:"ai_recommendations"`
	Justification      string                `json:"justification"`
	AlternativeOptions []clinical.Attributes `json:"alternative_options"`
	Warnings           []string              `json:"warnings"`
	MonitoringPlan     clinical.Attributes   `json:"monitoring_plan"`

	DoctorNotes string `json:"doctor_notes"`

	Status        Status `json:"status" enums:"draft,active,completed,cancelled"`
	IsAIGenerated *bool  `json:"is_ai_generated"`
}

type updatePrescriptionRequest struct {
	Diagnosis              *string                  `json:"diagnosis"`
	RecommendedMedications *[]RecommendedMedication `json:"recommended_medications"`
	Dosage                 *clinical.Attributes     `json:"dosage"`
	Duration               *string                  `json:"duration"`
	Instructions           *string                  `json:"instructions"`

	AIRecommendations  *clinical.Attributes   `json:"ai_recommendations"`
	Justification      *string                `json:"justification"`
	AlternativeOptions *[]clinical.Attributes `json:"alternative_options"`
	Warnings           *[]string              `json:"warnings"`
	MonitoringPlan     *clinical.Attributes   `json:"monitoring_plan"`

	PatientFeedback *string `json:"patient_feedback"`
	DoctorNotes     *string `json:"doctor_notes"`

	Status *Status `json:"status" enums:"draft,active,completed,cancelled"`
}

type prescriptionResponse struct {
	ID        int64 `json:"id"`
	PatientID int64 `json:"patient_id"`
	DoctorID  int64 `json:"doctor_id"`

	Diagnosis              string                  `json:"diagnosis"`
	RecommendedMedications []RecommendedMedication `json:"recommended_medications"`
	Dosage                 clinical.Attributes     `json:"dosage"`
	Duration               string                  `json:"duration"`
	Instructions           string                  `json:"instructions"`

	AIRecommendations  clinical.Attributes   `json:"ai_recommendations"`
	Justification      string                `json:"justification"`
	AlternativeOptions []clinical.Attributes `json:"alternative_options"`
	Warnings           []string              `json:"warnings"`
	MonitoringPlan     clinical.Attributes   `json:"monitoring_plan"`

	PatientFeedback string `json:"patient_feedback"`
	DoctorNotes     string `json:"doctor_notes"`

	Status        Status    `json:"status"`
	IsAIGenerated bool      `json:"is_ai_generated"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// createPrescriptionHandler godoc
// @Summary Crear receta
// @Description El paciente debe existir y pertenecer al doctor autenticado.
// @Tags prescriptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param payload body createPrescriptionRequest true "Receta"
// @Success 201 {object} prescriptionResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody "paciente no encontrado"
// @Router /prescriptions [post]
func createPrescriptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		var req createPrescriptionRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), claims.DoctorID, CreateInput(req))
		if err != nil {
			writeError(w, log, err)
			return
		}

		log.Info("prescription created", map[string]any{
			"prescription_id": p.ID,
			"patient_id":      p.PatientID,
			"doctor_id":       p.DoctorID,
		})
		httpx.WriteJSON(w, http.StatusCreated, toPrescriptionResponse(p))
	}
}

// listPrescriptionsHandler godoc
// @Summary Listar recetas del doctor
// @Tags prescriptions
// @Security BearerAuth
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Máximo" default(100)
// @Param patient_id query int false "Filtrar por paciente"
// @Param status query string false "Filtrar por estado" Enums(draft, active, completed, cancelled)
// @Success 200 {array} prescriptionResponse
// @Router /prescriptions [get]
func listPrescriptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
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
		patientID, err := httpx.QueryInt64(r, "patient_id")
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.List(r.Context(), claims.DoctorID, ListFilter{
			Page:      page,
			PatientID: patientID,
			Status:    Status(r.URL.Query().Get("status")),
		})
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]prescriptionResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPrescriptionResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getPrescriptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		id, ok := httpx.IDParam(r, "prescriptionID")
		if !ok {
			httpx.Error(w, http.StatusNotFound, "prescription not found")
			return
		}

		p, err := svc.Get(r.Context(), id, claims.DoctorID)
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPrescriptionResponse(p))
	}
}

// updatePrescriptionHandler godoc
// @Summary Actualizar receta
// @Description Solo se modifican los campos presentes en el body.
// @Tags prescriptions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param prescriptionID path int true "ID de la receta"
// @Param payload body updatePrescriptionRequest true "Campos a modificar"
// @Success 200 {object} prescriptionResponse
// @Failure 404 {object} httpx.ErrorBody
// @Router /prescriptions/{prescriptionID} [put]
func updatePrescriptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		id, ok := httpx.IDParam(r, "prescriptionID")
		if !ok {
			httpx.Error(w, http.StatusNotFound, "prescription not found")
			return
		}

		var req updatePrescriptionRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), id, claims.DoctorID, UpdateInput(req))
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPrescriptionResponse(p))
	}
}

func deletePrescriptionHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		id, ok := httpx.IDParam(r, "prescriptionID")
		if !ok {
			httpx.Error(w, http.StatusNotFound, "prescription not found")
			return
		}

		if err := svc.Delete(r.Context(), id, claims.DoctorID); err != nil {
			writeError(w, log, err)
			return
		}
		httpx.Message(w, http.StatusOK, "prescription deleted")
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, "invalid input: patient_id is required and status must be draft, active, completed or cancelled")
	case errors.Is(err, ErrPatientNotFound):
		httpx.Error(w, http.StatusNotFound, "patient not found")
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "prescription not found")
	default:
		httpx.StoreError(w, log, err)
	}
}

func toPrescriptionResponse(p Prescription) prescriptionResponse {
	return prescriptionResponse{
		ID:                     p.ID,
		PatientID:              p.PatientID,
		DoctorID:               p.DoctorID,
		Diagnosis:              p.Diagnosis,
		RecommendedMedications: p.RecommendedMedications,
		Dosage:                 p.Dosage,
		Duration:               p.Duration,
		Instructions:           p.Instructions,
		AIRecommendations:      p.AIRecommendations,
		Justification:          p.Justification,
		AlternativeOptions:     p.AlternativeOptions,
		Warnings:               p.Warnings,
		MonitoringPlan:         p.MonitoringPlan,
		PatientFeedback:        p.PatientFeedback,
		DoctorNotes:            p.DoctorNotes,
		Status:                 p.Status,
		IsAIGenerated:          p.IsAIGenerated,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}
