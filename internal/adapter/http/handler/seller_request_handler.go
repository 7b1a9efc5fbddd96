package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/annonceo/marketplace-service/internal/adapter/http/middleware"
	"github.com/annonceo/marketplace-service/internal/marketplace/usecase"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

type SellerRequestHandler struct {
	requestUC *usecase.SellerRequestUsecase
	logger    *logger.Logger
}

func NewSellerRequestHandler(requestUC *usecase.SellerRequestUsecase, log *logger.Logger) *SellerRequestHandler {
	return &SellerRequestHandler{requestUC: requestUC, logger: log}
}

type submitSellerRequestRequest struct {
	Message string `json:"message"`
}

func (h *SellerRequestHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitSellerRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	request, err := h.requestUC.Submit(r.Context(), middleware.UserIDFromContext(r.Context()), req.Message)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, request)
}

func (h *SellerRequestHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestUC.ListPending(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

type decideSellerRequestRequest struct {
	Approve bool `json:"approve"`
}

func (h *SellerRequestHandler) HandleDecide(w http.ResponseWriter, r *http.Request) {
	var req decideSellerRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	request, err := h.requestUC.Decide(
		r.Context(),
		chi.URLParam(r, "id"),
		middleware.UserIDFromContext(r.Context()),
		req.Approve,
	)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, request)
}
