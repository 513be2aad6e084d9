package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carewell-health/carewell-backend/api/controllers"
	"github.com/carewell-health/carewell-backend/api/middleware"
	"github.com/carewell-health/carewell-backend/internal/auth"
	"github.com/carewell-health/carewell-backend/internal/authz"
	"github.com/carewell-health/carewell-backend/internal/logs"
	"github.com/carewell-health/carewell-backend/internal/providers"
	"github.com/carewell-health/carewell-backend/internal/reminders"
	"github.com/carewell-health/carewell-backend/internal/users"
	"github.com/carewell-health/carewell-backend/internal/wellness"
	"github.com/carewell-health/carewell-backend/pkg/config"
	"github.com/carewell-health/carewell-backend/pkg/db"
	"github.com/carewell-health/carewell-backend/pkg/logger"
	"github.com/carewell-health/carewell-backend/pkg/metrics"
	"github.com/carewell-health/carewell-backend/pkg/redis"
)

// Deps carries everything the router needs; cmd/api builds it once.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           db.Pinger
	Redis        *redis.Client
	HTTPMetrics  *metrics.HTTPMetrics
	MetricsView  http.Handler
	AuthService  auth.Service
	Wellness     wellness.Service
	Providers    providers.Service
	UserRepo     *users.Repository
	LogRepo      *logs.Repository
	ReminderRepo *reminders.Repository
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(d.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(d.DB, d.Redis, logg))
	})

	if d.MetricsView != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsView)
	} else {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	r.Route("/api/v1/public", func(r chi.Router) {
		r.Get("/health-info", controllers.PublicHealthInfo())
		r.Get("/tip", controllers.PublicTipOfDay())
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, d.Redis, logg)).
			Post("/register", controllers.AuthRegister(d.AuthService, cfg.Cookie, cfg.JWT, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, d.Redis, logg)).
			Post("/login", controllers.AuthLogin(d.AuthService, cfg.Cookie, cfg.JWT, logg))
		r.Post("/logout", controllers.AuthLogout(cfg.Cookie))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, cfg.Cookie, d.UserRepo, logg))
			r.Get("/me", controllers.AuthMe(d.AuthService, logg))
		})
	})

	r.Route("/api/v1/patient", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, cfg.Cookie, d.UserRepo, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(authz.PermManageOwnProfile, logg))
			r.Get("/profile", controllers.PatientGetProfile(d.UserRepo, logg))
			r.Put("/profile", controllers.PatientUpdateProfile(d.UserRepo, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(authz.PermTrackWellness, logg))
			r.Get("/wellness", controllers.PatientGetWellness(d.Wellness, logg))
			r.Get("/logs", controllers.PatientListLogs(d.LogRepo, logg))
			r.Post("/logs", controllers.PatientCreateLog(d.LogRepo, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(authz.PermManageReminders, logg))
			r.Get("/reminders", controllers.PatientListReminders(d.ReminderRepo, logg))
			r.Post("/reminders", controllers.PatientCreateReminder(d.ReminderRepo, logg))
		})
	})

	r.Route("/api/v1/provider", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, cfg.Cookie, d.UserRepo, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(authz.PermManagePatients, logg))
			r.Post("/assign", controllers.ProviderAssignPatient(d.Providers, logg))
			r.Get("/patients", controllers.ProviderListPatients(d.Providers, logg))
			r.Get("/patients/{patientID}", controllers.ProviderGetPatientOverview(d.Providers, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePermission(authz.PermReviewCompliance, logg))
			r.Put("/patients/{patientID}/compliance", controllers.ProviderUpdateCompliance(d.Providers, logg))
		})
	})

	return r
}
