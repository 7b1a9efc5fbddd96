package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/marketplace/usecase"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

type CategoryHandler struct {
	categoryUC *usecase.CategoryUsecase
	logger     *logger.Logger
}

func NewCategoryHandler(categoryUC *usecase.CategoryUsecase, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC, logger: log}
}

func (h *CategoryHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUC.ListCategories(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) HandleGetCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryUC.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

type categoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (h *CategoryHandler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	category := &domain.Category{Name: req.Name, Icon: req.Icon}
	if err := h.categoryUC.CreateCategory(r.Context(), category); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	category := &domain.Category{
		ID:   chi.URLParam(r, "id"),
		Name: req.Name,
		Icon: req.Icon,
	}
	if err := h.categoryUC.UpdateCategory(r.Context(), category); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryUC.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *CategoryHandler) HandleListSubCategories(w http.ResponseWriter, r *http.Request) {
	subs, err := h.categoryUC.ListSubCategories(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, subs)
}

type subCategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (h *CategoryHandler) HandleCreateSubCategory(w http.ResponseWriter, r *http.Request) {
	var req subCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	sub := &domain.SubCategory{CategoryID: chi.URLParam(r, "id"), Name: req.Name, Icon: req.Icon}
	if err := h.categoryUC.CreateSubCategory(r.Context(), sub); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, sub)
}

func (h *CategoryHandler) HandleDeleteSubCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categoryUC.DeleteSubCategory(r.Context(), chi.URLParam(r, "subId")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
