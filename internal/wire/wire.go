package wire

import (
	"github.com/Mohammed-hani69/adsvairl/internal/adaptor"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/internal/usecase"
	"github.com/Mohammed-hani69/adsvairl/pkg/cache"
	"github.com/Mohammed-hani69/adsvairl/pkg/middleware"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router and services.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes.
func Wiring(
	repo *repository.Repository,
	c cache.Cache,
	images adaptor.ImageStore,
	db adaptor.Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, c, config, logger)
	handler := adaptor.NewHandler(service, images, config.Upload.Dir, db, logger)

	return &App{
		Router:  setupRouter(handler, repo, config, logger),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, repo *repository.Repository, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	// guards shared by every route file
	auth := middleware.AuthSession(repo.Session, repo.User, logger)
	optional := middleware.OptionalSession(repo.Session, repo.User, logger)
	admin := middleware.Admin(logger)

	wireAuth(r, handler.Auth, auth)
	wireUser(r, handler.User, auth, admin)
	wireCategory(r, handler.Category, auth, admin)
	wireAd(r, handler.Ad, handler.Moderation, auth, admin)
	wireLocation(r, handler.Location, auth, admin)
	wireVip(r, handler.VipStore, handler.VipOrder, handler.StoreProduct, auth, optional, admin)

	r.Get("/uploads/{name}", handler.Upload.Serve)
	r.Get("/health", handler.Health.Check)

	return r
}
