package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"github.com/vkc/ponto_backendl/config"
	"github.com/vkc/ponto_backendl/internal/handlers"
	"github.com/vkc/ponto_backendl/internal/pkg/response"
	"github.com/vkc/ponto_backendl/internal/repositories"
	"github.com/vkc/ponto_backendl/internal/services/auth"
	"github.com/vkc/ponto_backendl/internal/services/moderation"
)

// Setup builds the ops router. The public surface doubles as the keep-alive
// endpoint the hosting platform pings; everything under /api/admin requires
// a JWT from the login endpoint.
func Setup(cfg *config.Config, shiftRepo *repositories.ShiftRepository, counter *moderation.Counter) *chi.Mux {
	jwtAuth := jwtauth.New("HS256", []byte(cfg.JwtSecret), nil)
	jwtService := auth.NewJWTService(cfg.JwtSecret)

	router := chi.NewRouter()
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	// keep-alive surface
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Bot está online."))
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Post("/api/admin/login", handlers.LoginHandler(cfg, jwtService))

	router.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtAuth))
		r.Use(jwtauth.Authenticator(jwtAuth))

		r.Get("/api/admin/active-shifts", handlers.ActiveShiftsHandler(shiftRepo))
		r.Get("/api/admin/ended-shifts", handlers.EndedShiftsHandler(shiftRepo))
		r.Get("/api/admin/prisoes", handlers.IncidentReportHandler(counter))
		r.Get("/api/admin/prisoes/{actorID}/total", handlers.ActorTotalHandler(counter))
		r.Get("/api/admin/export/shifts.xlsx", handlers.ExportShiftHistoryHandler(shiftRepo))
	})

	return router
}
