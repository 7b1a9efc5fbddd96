package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/annonceo/marketplace-service/internal/adapter/http/handler"
	"github.com/annonceo/marketplace-service/internal/adapter/http/middleware"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
	"github.com/annonceo/marketplace-service/internal/platform/metrics"
)

type Handlers struct {
	Listing       *handler.ListingHandler
	Attribute     *handler.AttributeHandler
	Category      *handler.CategoryHandler
	User          *handler.UserHandler
	Favorite      *handler.FavoriteHandler
	SellerRequest *handler.SellerRequestHandler
}

// NewRouter assembles the public, authenticated and admin route groups.
func NewRouter(h Handlers, jwtSecret, serviceName string, appLogger *logger.Logger, mm *metrics.MetricsManager) *chi.Mux {
	mux := chi.NewRouter()

	mux.Use(chimiddleware.Recoverer)
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Tracing(serviceName))
	mux.Use(middleware.Logging(appLogger, mm))

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	SetupUserRoutes(mux, h.User, h.SellerRequest, jwtSecret)
	SetupListingRoutes(mux, h.Listing, h.Favorite, jwtSecret)
	SetupAttributeRoutes(mux, h.Attribute, jwtSecret)
	SetupCategoryRoutes(mux, h.Category, jwtSecret)

	return mux
}
