package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/annonceo/marketplace-service/internal/adapter/http/handler"
	"github.com/annonceo/marketplace-service/internal/adapter/http/middleware"
	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

func SetupListingRoutes(mux *chi.Mux, h *handler.ListingHandler, fh *handler.FavoriteHandler, jwtSecret string) {
	// public; search recognizes admin callers for the inactive override
	mux.Group(func(r chi.Router) {
		r.Use(middleware.OptionalJWTAuth(jwtSecret))

		r.Get("/api/listings", h.HandleSearchListings)
	})
	mux.Get("/api/listings/{id}", h.HandleGetListingByID)

	// sellers and admins manage listings
	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))
		r.Use(middleware.RequireRole(domain.RoleSeller, domain.RoleAdmin))

		r.Post("/api/listings", h.HandleCreateListing)
		r.Put("/api/listings/{id}", h.HandleUpdateListing)
		r.Delete("/api/listings/{id}", h.HandleDeleteListing)
	})

	// any authenticated user keeps favorites
	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))

		r.Post("/api/favorites", fh.HandleAddFavorite)
		r.Delete("/api/favorites/{listingId}", fh.HandleRemoveFavorite)
		r.Get("/api/favorites", fh.HandleListFavorites)
	})
}
