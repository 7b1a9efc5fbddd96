package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/annonceo/marketplace-service/internal/adapter/http/middleware"
	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/marketplace/usecase"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

type AttributeHandler struct {
	attributeUC *usecase.AttributeUsecase
	logger      *logger.Logger
}

func NewAttributeHandler(attributeUC *usecase.AttributeUsecase, log *logger.Logger) *AttributeHandler {
	return &AttributeHandler{attributeUC: attributeUC, logger: log}
}

func (h *AttributeHandler) HandleListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryId")
	defs, err := h.attributeUC.ListDefinitionsByCategory(r.Context(), categoryID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, defs)
}

// HandleGetListingValues returns the stored values as a mapping keyed by
// attribute definition ID, the shape edit forms consume.
func (h *AttributeHandler) HandleGetListingValues(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingId")
	values, err := h.attributeUC.GetValuesForListing(r.Context(), listingID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, values)
}

// HandleGetListingAttributes returns the display views listing pages render:
// every active definition of the category with the formatted value.
func (h *AttributeHandler) HandleGetListingAttributes(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingId")
	views, err := h.attributeUC.ListingAttributes(r.Context(), listingID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, views)
}

type upsertValuesRequest struct {
	Attributes map[string]interface{} `json:"attributes"`
}

// HandleUpsertValues stores the valid attributes and reports the rejected
// ones. Partial success is a 200 with both lists populated.
func (h *AttributeHandler) HandleUpsertValues(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "listingId")

	var req upsertValuesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.attributeUC.UpsertValues(
		r.Context(),
		listingID,
		middleware.UserIDFromContext(r.Context()),
		middleware.UserRoleFromContext(r.Context()),
		req.Attributes,
	)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type definitionRequest struct {
	CategoryID  string   `json:"category_id"`
	Name        string   `json:"name"`
	ValueType   string   `json:"value_type"`
	Options     []string `json:"options"`
	Required    bool     `json:"required"`
	Order       int      `json:"order"`
	Placeholder string   `json:"placeholder"`
	Description string   `json:"description"`
	IsActive    *bool    `json:"is_active"`
	DateFormat  string   `json:"date_format"`
	MinDate     *string  `json:"min_date"`
	MaxDate     *string  `json:"max_date"`
}

func (req *definitionRequest) toDomain() (*domain.AttributeDefinition, error) {
	def := &domain.AttributeDefinition{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		ValueType:   domain.ValueType(req.ValueType),
		Options:     req.Options,
		Required:    req.Required,
		Order:       req.Order,
		Placeholder: req.Placeholder,
		Description: req.Description,
		IsActive:    true,
		DateFormat:  domain.DateFormat(req.DateFormat),
	}
	if req.IsActive != nil {
		def.IsActive = *req.IsActive
	}
	if req.MinDate != nil {
		t, err := time.Parse("2006-01-02", *req.MinDate)
		if err != nil {
			return nil, err
		}
		def.MinDate = &t
	}
	if req.MaxDate != nil {
		t, err := time.Parse("2006-01-02", *req.MaxDate)
		if err != nil {
			return nil, err
		}
		def.MaxDate = &t
	}
	return def, nil
}

func (h *AttributeHandler) HandleCreateDefinition(w http.ResponseWriter, r *http.Request) {
	var req definitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	def, err := req.toDomain()
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date bound"})
		return
	}
	if err := h.attributeUC.CreateDefinition(r.Context(), def); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, def)
}

func (h *AttributeHandler) HandleUpdateDefinition(w http.ResponseWriter, r *http.Request) {
	var req definitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	def, err := req.toDomain()
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date bound"})
		return
	}
	def.ID = chi.URLParam(r, "id")
	if err := h.attributeUC.UpdateDefinition(r.Context(), def); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, def)
}

func (h *AttributeHandler) HandleGetDefinition(w http.ResponseWriter, r *http.Request) {
	def, err := h.attributeUC.GetDefinition(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, def)
}

func (h *AttributeHandler) HandleDeleteDefinition(w http.ResponseWriter, r *http.Request) {
	if err := h.attributeUC.DeleteDefinition(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
