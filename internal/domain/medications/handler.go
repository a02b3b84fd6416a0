package medications

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clinical-rx/internal/middleware"
	"clinical-rx/internal/platform/httpx"
	"clinical-rx/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/medications", func(mr chi.Router) {
		// Lectura pública del formulario
		mr.Get("/", listMedicationsHandler(svc, log))
		mr.Get("/search", searchMedicationsHandler(svc, log))
		mr.Get("/classes", drugClassesHandler(svc, log))
		mr.Get("/classes/", drugClassesHandler(svc, log))
		mr.Get("/{medicationID}", getMedicationHandler(svc, log))

		// Administración (requiere doctor autenticado)
		mr.Post("/", createMedicationHandler(svc, log))
		mr.Put("/{medicationID}", updateMedicationHandler(svc, log))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc, log))
	})
}

type createMedicationRequest struct {
	Name              string `json:"name"`
	GenericName       string `json:"generic_name"`
	DrugClass         string `json:"drug_class"`
	MechanismOfAction string `json:"mechanism_of_action"`

	AvailableDosages  []string `json:"available_dosages"`
	Indications       []string `json:"indications"`
	Contraindications []string `json:"contraindications"`
	SideEffects       []string `json:"side_effects"`

	DrugInteractions     []DrugInteraction     `json:"drug_interactions"`
	MonitoringParameters []MonitoringParameter `json:"monitoring_parameters"`
	TherapeuticRange     *TherapeuticRange     `json:"therapeutic_range"`
}

type updateMedicationRequest struct {
	Name              *string `json:"name"`
	GenericName       *string `json:"generic_name"`
	DrugClass         *string `json:"drug_class"`
	MechanismOfAction *string `json:"mechanism_of_action"`

	AvailableDosages  *[]string `json:"available_dosages"`
	Indications       *[]string `json:"indications"`
	Contraindications *[]string `json:"contraindications"`
	SideEffects       *[]string `json:"side_effects"`

	DrugInteractions     *[]DrugInteraction     `json:"drug_interactions"`
	MonitoringParameters *[]MonitoringParameter `json:"monitoring_parameters"`
	TherapeuticRange     *TherapeuticRange      `json:"therapeutic_range"`

	IsActive *bool `json:"is_active"`
}

type medicationResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	GenericName       string `json:"generic_name"`
	DrugClass         string `json:"drug_class"`
	MechanismOfAction string `json:"mechanism_of_action"`

	AvailableDosages  []string `json:"available_dosages"`
	Indications       []string `json:"indications"`
	Contraindications []string `json:"contraindications"`
	SideEffects       []string `json:"side_effects"`

	DrugInteractions     []DrugInteraction     `json:"drug_interactions"`
	MonitoringParameters []MonitoringParameter `json:"monitoring_parameters"`
	TherapeuticRange     *TherapeuticRange     `json:"therapeutic_range"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// searchResultResponse es la vista reducida que devuelve /search.
type searchResultResponse struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	GenericName      string   `json:"generic_name"`
	DrugClass        string   `json:"drug_class"`
	AvailableDosages []string `json:"available_dosages"`
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos activos
// @Tags medications
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Máximo" default(100)
// @Param drug_class query string false "Clase farmacológica exacta"
// @Success 200 {array} medicationResponse
// @Router /medications [get]
func listMedicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := httpx.PageFromQuery(r)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		items, err := svc.List(r.Context(), page, r.URL.Query().Get("drug_class"))
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// searchMedicationsHandler godoc
// @Summary Buscar medicamentos por nombre
// @Description Substring sin distinguir mayúsculas. Incluye medicamentos inactivos.
// @Tags medications
// @Produce json
// @Param q query string true "Texto a buscar"
// @Param limit query int false "Máximo (1..50)" default(10)
// @Success 200 {array} searchResultResponse
// @Failure 400 {object} httpx.ErrorBody
// @Router /medications/search [get]
func searchMedicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if strings.TrimSpace(q) == "" {
			httpx.Error(w, http.StatusBadRequest, "q is required")
			return
		}

		limit := DefaultSearchLimit
		if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > MaxSearchLimit {
				httpx.Error(w, http.StatusBadRequest, "limit must be between 1 and 50")
				return
			}
			limit = n
		}

		items, err := svc.Search(r.Context(), q, limit)
		if err != nil {
			writeError(w, log, err)
			return
		}

		out := make([]searchResultResponse, 0, len(items))
		for _, m := range items {
			out = append(out, searchResultResponse{
				ID:               m.ID,
				Name:             m.Name,
				GenericName:      m.GenericName,
				DrugClass:        m.DrugClass,
				AvailableDosages: m.AvailableDosages,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func drugClassesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classes, err := svc.DrugClasses(r.Context())
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, classes)
	}
}

func getMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.IDParam(r, "medicationID")
		if !ok {
			httpx.Error(w, http.StatusNotFound, "medication not found")
			return
		}

		m, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

func createMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireClaims(w, r)
		if !ok {
			return
		}

		var req createMedicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		m, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			writeError(w, log, err)
			return
		}

		log.Info("medication created", map[string]any{"medication_id": m.ID, "doctor_id": claims.DoctorID})
		httpx.WriteJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

func updateMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireClaims(w, r); !ok {
			return
		}

		id, ok := httpx.IDParam(r, "medicationID")
		if !ok {
			httpx.Error(w, http.StatusNotFound, "medication not found")
			return
		}

		var req updateMedicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		m, err := svc.Update(r.Context(), id, UpdateInput(req))
		if err != nil {
			writeError(w, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

func deleteMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireClaims(w, r); !ok {
			return
		}

		id, ok := httpx.IDParam(r, "medicationID")
		if !ok {
			httpx.Error(w, http.StatusNotFound, "medication not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, log, err)
			return
		}
		httpx.Message(w, http.StatusOK, "medication deleted")
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.Error(w, http.StatusBadRequest, "invalid input")
	case errors.Is(err, ErrNotFound):
		httpx.Error(w, http.StatusNotFound, "medication not found")
	default:
		httpx.StoreError(w, log, err)
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:                   m.ID,
		Name:                 m.Name,
		GenericName:          m.GenericName,
		DrugClass:            m.DrugClass,
		MechanismOfAction:    m.MechanismOfAction,
		AvailableDosages:     m.AvailableDosages,
		Indications:          m.Indications,
		Contraindications:    m.Contraindications,
		SideEffects:          m.SideEffects,
		DrugInteractions:     m.DrugInteractions,
		MonitoringParameters: m.MonitoringParameters,
		TherapeuticRange:     m.TherapeuticRange,
		IsActive:             m.IsActive,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
