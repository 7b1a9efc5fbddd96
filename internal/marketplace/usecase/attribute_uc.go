package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/annonceo/marketplace-service/internal/marketplace/attrschema"
	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
	"github.com/annonceo/marketplace-service/internal/platform/metrics"
)

// AttributeUsecase manages attribute definitions and the typed values listings
// carry for them.
type AttributeUsecase struct {
	defRepo      domain.AttributeDefinitionRepository
	valueRepo    domain.AttributeValueRepository
	listingRepo  domain.ListingRepository
	categoryRepo domain.CategoryRepository
	cache        DefinitionCache
	formatter    *attrschema.Formatter
	metrics      *metrics.MetricsManager
	logger       *logger.Logger
}

func NewAttributeUsecase(
	defRepo domain.AttributeDefinitionRepository,
	valueRepo domain.AttributeValueRepository,
	listingRepo domain.ListingRepository,
	categoryRepo domain.CategoryRepository,
	cache DefinitionCache,
	formatter *attrschema.Formatter,
	mm *metrics.MetricsManager,
	log *logger.Logger,
) *AttributeUsecase {
	return &AttributeUsecase{
		defRepo:      defRepo,
		valueRepo:    valueRepo,
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		formatter:    formatter,
		metrics:      mm,
		logger:       log,
	}
}

// ListDefinitionsByCategory reads through the cache. Only active definitions
// are returned, sorted by display order.
func (uc *AttributeUsecase) ListDefinitionsByCategory(ctx context.Context, categoryID string) ([]*domain.AttributeDefinition, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetDefinitions(ctx, categoryID)
		if err != nil {
			uc.logger.Warn("failed to read definitions from cache", zap.Error(err), zap.String("category_id", categoryID))
		} else if cached != nil {
			return cached, nil
		}
	}

	defs, err := uc.defRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.SetDefinitions(ctx, categoryID, defs); err != nil {
			uc.logger.Warn("failed to cache definitions", zap.Error(err), zap.String("category_id", categoryID))
		}
	}
	return defs, nil
}

func (uc *AttributeUsecase) GetDefinition(ctx context.Context, id string) (*domain.AttributeDefinition, error) {
	return uc.defRepo.FindByID(ctx, id)
}

func (uc *AttributeUsecase) CreateDefinition(ctx context.Context, def *domain.AttributeDefinition) error {
	if err := validateDefinition(def); err != nil {
		return err
	}
	if _, err := uc.categoryRepo.FindByID(ctx, def.CategoryID); err != nil {
		return err
	}
	if err := uc.defRepo.Create(ctx, def); err != nil {
		return err
	}
	uc.invalidateDefinitions(ctx, def.CategoryID)
	uc.logger.Info("attribute definition created",
		zap.String("attribute_id", def.ID),
		zap.String("category_id", def.CategoryID),
		zap.String("name", def.Name))
	return nil
}

func (uc *AttributeUsecase) UpdateDefinition(ctx context.Context, def *domain.AttributeDefinition) error {
	if err := validateDefinition(def); err != nil {
		return err
	}
	existing, err := uc.defRepo.FindByID(ctx, def.ID)
	if err != nil {
		return err
	}
	def.CreatedAt = existing.CreatedAt
	if err := uc.defRepo.Update(ctx, def); err != nil {
		return err
	}
	uc.invalidateDefinitions(ctx, def.CategoryID)
	if existing.CategoryID != def.CategoryID {
		uc.invalidateDefinitions(ctx, existing.CategoryID)
	}
	return nil
}

// DeleteDefinition removes the definition together with every stored value
// that references it. Values go first so a partial failure never leaves
// values pointing at a missing definition.
func (uc *AttributeUsecase) DeleteDefinition(ctx context.Context, id string) error {
	def, err := uc.defRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	deleted, err := uc.valueRepo.DeleteByAttributeID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete values of attribute %s: %w", id, err)
	}
	if err := uc.defRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidateDefinitions(ctx, def.CategoryID)
	uc.logger.Info("attribute definition deleted",
		zap.String("attribute_id", id),
		zap.Int64("values_deleted", deleted))
	return nil
}

// UpsertResult reports which attributes were stored and which were rejected.
// Both lists are keyed by the submitted attribute ID so the client can
// re-prompt per failed field. Saved and Errors can both be non-empty for the
// same request.
type UpsertResult struct {
	Saved  []string               `json:"saved"`
	Errors []attrschema.FieldError `json:"errors"`
}

// UpsertValues validates each submitted attribute against its definition and
// stores the ones that pass. A rejected field never blocks its siblings.
func (uc *AttributeUsecase) UpsertValues(ctx context.Context, listingID, actorID string, actorRole domain.UserRole, raw map[string]interface{}) (*UpsertResult, error) {
	listing, err := uc.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.UserID != actorID && actorRole != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	result := &UpsertResult{Saved: []string{}, Errors: []attrschema.FieldError{}}
	for attributeID, rawValue := range raw {
		def, err := uc.defRepo.FindByID(ctx, attributeID)
		if err != nil || def.CategoryID != listing.CategoryID || !def.IsActive {
			result.Errors = append(result.Errors, attrschema.FieldError{
				Field:   attributeID,
				Code:    attrschema.CodeUnknownAttribute,
				Message: "no such attribute for this listing's category",
			})
			uc.countValidationFailure(attrschema.CodeUnknownAttribute)
			continue
		}

		typed, fieldErr := attrschema.Validate(def, rawValue)
		if fieldErr != nil {
			fieldErr.Field = attributeID
			result.Errors = append(result.Errors, *fieldErr)
			uc.countValidationFailure(fieldErr.Code)
			continue
		}
		if typed == nil {
			// optional and empty, nothing to store
			continue
		}

		value := &domain.AttributeValue{
			ListingID:   listingID,
			AttributeID: attributeID,
			Value:       *typed,
		}
		if err := uc.valueRepo.Upsert(ctx, value); err != nil {
			uc.logger.Error("failed to upsert attribute value",
				zap.Error(err),
				zap.String("listing_id", listingID),
				zap.String("attribute_id", attributeID))
			return result, err
		}
		result.Saved = append(result.Saved, attributeID)
		if uc.metrics != nil {
			uc.metrics.AttributeWritesTotal.Inc()
		}
	}
	return result, nil
}

// GetValuesForListing returns the stored values keyed by definition ID.
func (uc *AttributeUsecase) GetValuesForListing(ctx context.Context, listingID string) (map[string]*domain.TypedValue, error) {
	if _, err := uc.listingRepo.FindByID(ctx, listingID); err != nil {
		return nil, err
	}
	values, err := uc.valueRepo.FindByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*domain.TypedValue, len(values))
	for _, v := range values {
		value := v.Value
		out[v.AttributeID] = &value
	}
	return out, nil
}

// AttributeView pairs a stored value with its definition and the localized
// display string shown on listing pages.
type AttributeView struct {
	AttributeID string             `json:"attribute_id"`
	Name        string             `json:"name"`
	Value       *domain.TypedValue `json:"value,omitempty"`
	Formatted   string             `json:"formatted"`
	Order       int                `json:"order"`
}

// ListingAttributes returns every active definition of the listing's category
// in display order, with the stored value and its formatted rendering where
// one exists.
func (uc *AttributeUsecase) ListingAttributes(ctx context.Context, listingID string) ([]AttributeView, error) {
	listing, err := uc.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	defs, err := uc.ListDefinitionsByCategory(ctx, listing.CategoryID)
	if err != nil {
		return nil, err
	}
	values, err := uc.valueRepo.FindByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	byAttribute := make(map[string]*domain.TypedValue, len(values))
	for _, v := range values {
		value := v.Value
		byAttribute[v.AttributeID] = &value
	}

	views := make([]AttributeView, 0, len(defs))
	for _, def := range defs {
		value := byAttribute[def.ID]
		views = append(views, AttributeView{
			AttributeID: def.ID,
			Name:        def.Name,
			Value:       value,
			Formatted:   uc.formatter.Format(def, value),
			Order:       def.Order,
		})
	}
	return views, nil
}

func (uc *AttributeUsecase) countValidationFailure(code attrschema.ErrorCode) {
	if uc.metrics != nil {
		uc.metrics.ValidationFailuresTotal.WithLabelValues(string(code)).Inc()
	}
}

func (uc *AttributeUsecase) invalidateDefinitions(ctx context.Context, categoryID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteDefinitions(ctx, categoryID); err != nil {
		uc.logger.Warn("failed to invalidate definitions cache", zap.Error(err), zap.String("category_id", categoryID))
	}
}

func validateDefinition(def *domain.AttributeDefinition) error {
	if def.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidDefinition)
	}
	switch def.ValueType {
	case domain.TypeString, domain.TypeNumber, domain.TypeBoolean, domain.TypeDate:
	case domain.TypeSelect:
		if len(def.Options) == 0 {
			return fmt.Errorf("%w: select attribute needs at least one option", domain.ErrInvalidDefinition)
		}
	default:
		return fmt.Errorf("%w: unknown value type %q", domain.ErrInvalidDefinition, def.ValueType)
	}
	if def.ValueType == domain.TypeDate && def.MinDate != nil && def.MaxDate != nil && def.MaxDate.Before(*def.MinDate) {
		return fmt.Errorf("%w: max date is before min date", domain.ErrInvalidDefinition)
	}
	return nil
}
