package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/annonceo/marketplace-service/internal/adapter/http/handler"
	"github.com/annonceo/marketplace-service/internal/adapter/http/middleware"
	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

func SetupCategoryRoutes(mux *chi.Mux, h *handler.CategoryHandler, jwtSecret string) {
	// public
	mux.Get("/api/categories", h.HandleListCategories)
	mux.Get("/api/categories/{id}", h.HandleGetCategory)
	mux.Get("/api/categories/{id}/sub-categories", h.HandleListSubCategories)

	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))
		r.Use(middleware.RequireRole(domain.RoleAdmin))

		r.Post("/api/categories", h.HandleCreateCategory)
		r.Put("/api/categories/{id}", h.HandleUpdateCategory)
		r.Delete("/api/categories/{id}", h.HandleDeleteCategory)
		r.Post("/api/categories/{id}/sub-categories", h.HandleCreateSubCategory)
		r.Delete("/api/categories/{id}/sub-categories/{subId}", h.HandleDeleteSubCategory)
	})
}
