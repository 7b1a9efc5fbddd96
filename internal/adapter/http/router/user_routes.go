package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/annonceo/marketplace-service/internal/adapter/http/handler"
	"github.com/annonceo/marketplace-service/internal/adapter/http/middleware"
	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

func SetupUserRoutes(mux *chi.Mux, h *handler.UserHandler, sh *handler.SellerRequestHandler, jwtSecret string) {
	mux.Post("/api/users/register", h.HandleRegister)
	mux.Post("/api/users/login", h.HandleLogin)

	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))

		r.Get("/api/users/profile", h.HandleGetProfile)
		r.Post("/api/seller-requests", sh.HandleSubmit)
	})

	mux.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))
		r.Use(middleware.RequireRole(domain.RoleAdmin))

		r.Get("/api/seller-requests/pending", sh.HandleListPending)
		r.Post("/api/seller-requests/{id}/decision", sh.HandleDecide)
	})
}
