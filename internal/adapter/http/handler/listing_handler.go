package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/annonceo/marketplace-service/internal/adapter/http/middleware"
	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/marketplace/usecase"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

// attrFilterPrefix marks query parameters carrying attribute filters, e.g.
// attr_66b0f2=oui. The suffix is the attribute definition ID.
const attrFilterPrefix = "attr_"

type ListingHandler struct {
	listingUC *usecase.ListingUsecase
	logger    *logger.Logger
}

func NewListingHandler(listingUC *usecase.ListingUsecase, log *logger.Logger) *ListingHandler {
	return &ListingHandler{listingUC: listingUC, logger: log}
}

type createListingRequest struct {
	CategoryID    string   `json:"category_id"`
	SubCategoryID string   `json:"sub_category_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	City          string   `json:"city"`
	Price         float64  `json:"price"`
	Brand         string   `json:"brand"`
	Condition     string   `json:"condition"`
	Photos        []string `json:"photos"`
}

func (h *ListingHandler) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	listing, err := h.listingUC.CreateListing(r.Context(), usecase.CreateListingInput{
		UserID:        middleware.UserIDFromContext(r.Context()),
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		Price:         req.Price,
		Brand:         req.Brand,
		Condition:     domain.ListingCondition(req.Condition),
		Photos:        req.Photos,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, listing)
}

type updateListingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	Price       *float64 `json:"price"`
	Brand       string   `json:"brand"`
	Condition   string   `json:"condition"`
	Photos      []string `json:"photos"`
	IsActive    *bool    `json:"is_active"`
}

func (h *ListingHandler) HandleUpdateListing(w http.ResponseWriter, r *http.Request) {
	var req updateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	listing, err := h.listingUC.UpdateListing(
		r.Context(),
		chi.URLParam(r, "id"),
		middleware.UserIDFromContext(r.Context()),
		middleware.UserRoleFromContext(r.Context()),
		usecase.UpdateListingInput{
			Title:       req.Title,
			Description: req.Description,
			City:        req.City,
			Price:       req.Price,
			Brand:       req.Brand,
			Condition:   domain.ListingCondition(req.Condition),
			Photos:      req.Photos,
			IsActive:    req.IsActive,
		},
	)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) HandleDeleteListing(w http.ResponseWriter, r *http.Request) {
	err := h.listingUC.DeleteListing(
		r.Context(),
		chi.URLParam(r, "id"),
		middleware.UserIDFromContext(r.Context()),
		middleware.UserRoleFromContext(r.Context()),
	)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ListingHandler) HandleGetListingByID(w http.ResponseWriter, r *http.Request) {
	listing, err := h.listingUC.GetListingByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// HandleSearchListings keeps the historical French query parameter names the
// web client already sends.
func (h *ListingHandler) HandleSearchListings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.ListingFilter{
		CategoryID:    query.Get("categoria"),
		SubCategoryID: query.Get("sous_categorie"),
		City:          query.Get("ville"),
		FreeText:      query.Get("recherche"),
		Condition:     domain.ListingCondition(query.Get("etat")),
		Sort:          domain.ListingSort(query.Get("tri")),
	}

	// admins may widen the search to inactive listings
	if query.Get("inclure_inactifs") == "true" && middleware.UserRoleFromContext(r.Context()) == domain.RoleAdmin {
		filter.IncludeInactive = true
	}

	if raw := query.Get("min_prix"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "min_prix must be a number"})
			return
		}
		filter.MinPrice = &price
	}
	if raw := query.Get("max_prix"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "max_prix must be a number"})
			return
		}
		filter.MaxPrice = &price
	}

	for key, values := range query {
		if !strings.HasPrefix(key, attrFilterPrefix) || len(values) == 0 || values[0] == "" {
			continue
		}
		attributeID := strings.TrimPrefix(key, attrFilterPrefix)
		if filter.AttributeFilters == nil {
			filter.AttributeFilters = make(map[string]string)
		}
		filter.AttributeFilters[attributeID] = values[0]
	}

	listings, err := h.listingUC.SearchListings(r.Context(), filter)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, listings)
}
