package router

import (
	"database/sql"
	"errors"
	"net/http"

	_ "clinical-rx/docs"
	"clinical-rx/internal/adapters/auth/password"
	mem "clinical-rx/internal/adapters/storage/memory"
	pg "clinical-rx/internal/adapters/storage/postgres"
	"clinical-rx/internal/domain/doctors"
	"clinical-rx/internal/domain/medications"
	"clinical-rx/internal/domain/patients"
	"clinical-rx/internal/domain/prescriptions"
	"clinical-rx/internal/middleware"
	"clinical-rx/internal/platform/logger"
	"clinical-rx/internal/ports/auth"
	"clinical-rx/internal/ports/storage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Tokens agrupa emisión y verificación; tokens.Service cumple ambas.
type Tokens interface {
	auth.AuthVerifier
	auth.TokenIssuer
}

type Options struct {
	// Mode con el que se atiende cada request.
	Mode storage.Mode

	// Opcional: sin DB el modo postgres responde 503.
	DB *sql.DB

	// Opcional: si viene nil se crea un store vacío.
	Memory *mem.Store

	Tokens Tokens
	Hasher doctors.PasswordHasher
	Logger logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	if opts.Tokens == nil {
		return nil, errors.New("router: tokens required")
	}
	if opts.Mode == "" {
		opts.Mode = storage.ModeMemory
	}
	if opts.Memory == nil {
		opts.Memory = mem.NewStore()
	}
	if opts.Hasher == nil {
		opts.Hasher = password.NewBcrypt(0)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	doctorRepos := storage.Backends[doctors.Repository]{Memory: opts.Memory.Doctors()}
	patientRepos := storage.Backends[patients.Repository]{Memory: opts.Memory.Patients()}
	medicationRepos := storage.Backends[medications.Repository]{Memory: opts.Memory.Medications()}
	prescriptionRepos := storage.Backends[prescriptions.Repository]{Memory: opts.Memory.Prescriptions()}

	if opts.DB != nil {
		doctorRepos.Postgres = pg.NewDoctorsRepo(opts.DB)
		patientRepos.Postgres = pg.NewPatientsRepo(opts.DB)
		medicationRepos.Postgres = pg.NewMedicationsRepo(opts.DB)
		prescriptionRepos.Postgres = pg.NewPrescriptionsRepo(opts.DB)
	}

	// Services por módulo
	doctorsSvc := doctors.NewService(doctorRepos, opts.Hasher)
	patientsSvc := patients.NewService(patientRepos)
	medicationsSvc := medications.NewService(medicationRepos)
	prescriptionsSvc := prescriptions.NewService(prescriptionRepos, patientsSvc)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.StoreMode(opts.Mode))
	r.Use(middleware.AuthContext(opts.Tokens, doctorsSvc, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	doctors.RegisterRoutes(r, doctorsSvc, opts.Tokens, log)
	patients.RegisterRoutes(r, patientsSvc, log)
	medications.RegisterRoutes(r, medicationsSvc, log)
	prescriptions.RegisterRoutes(r, prescriptionsSvc, log)

	return r, nil
}
