package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/annonceo/marketplace-service/internal/adapter/http/middleware"
	"github.com/annonceo/marketplace-service/internal/marketplace/usecase"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

type FavoriteHandler struct {
	favoriteUC *usecase.FavoriteUsecase
	logger     *logger.Logger
}

func NewFavoriteHandler(favoriteUC *usecase.FavoriteUsecase, log *logger.Logger) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: favoriteUC, logger: log}
}

type addFavoriteRequest struct {
	ListingID string `json:"listing_id"`
}

func (h *FavoriteHandler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ListingID == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "listing_id is required"})
		return
	}
	userID := middleware.UserIDFromContext(r.Context())
	if err := h.favoriteUC.AddFavorite(r.Context(), userID, req.ListingID); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, nil)
}

func (h *FavoriteHandler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if err := h.favoriteUC.RemoveFavorite(r.Context(), userID, chi.URLParam(r, "listingId")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *FavoriteHandler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	listings, err := h.favoriteUC.ListFavorites(r.Context(), userID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}
