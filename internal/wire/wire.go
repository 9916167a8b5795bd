package wire

import (
	"net/http"

	"seat-booking/internal/adaptor"
	"seat-booking/internal/data/repository"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/middleware"
	"seat-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired service and its router.
type App struct {
	Router      *chi.Mux
	Service     *usecase.Service
	LoginLimits *middleware.RateLimiter
}

// Wiring builds services and handlers and registers every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)
	limiter := middleware.NewRateLimiter(config.RateLimit.LoginPerMinute, config.RateLimit.LoginBurst, logger)

	router := setupRouter(handler, service, limiter, config, logger)

	return &App{
		Router:      router,
		Service:     service,
		LoginLimits: limiter,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	limiter *middleware.RateLimiter,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))
	r.Use(middleware.Session(service.Auth, logger))
	r.Use(middleware.Logger(logger))

	wireAuth(r, handler.Auth, limiter, logger)
	wireBooking(r, handler.Booking, logger)
	wireUser(r, handler.User, logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
