package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/annonceo/marketplace-service/internal/adapter/http/handler"
	"github.com/annonceo/marketplace-service/internal/adapter/http/middleware"
	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

func SetupAttributeRoutes(mux *chi.Mux, h *handler.AttributeHandler, jwtSecret string) {
	// public
	mux.Get("/api/attributes/by-category/{categoryId}", h.HandleListByCategory)
	mux.Get("/api/attributes/values/{listingId}", h.HandleGetListingValues)
	mux.Get("/api/attributes/views/{listingId}", h.HandleGetListingAttributes)

	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))

		r.Post("/api/attributes/values/{listingId}", h.HandleUpsertValues)
	})

	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))
		r.Use(middleware.RequireRole(domain.RoleAdmin))

		r.Post("/api/attributes/admin", h.HandleCreateDefinition)
		r.Get("/api/attributes/admin/{id}", h.HandleGetDefinition)
		r.Put("/api/attributes/admin/{id}", h.HandleUpdateDefinition)
		r.Delete("/api/attributes/admin/{id}", h.HandleDeleteDefinition)
	})
}
