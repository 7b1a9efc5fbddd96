package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
	"github.com/annonceo/marketplace-service/internal/platform/metrics"
)

// Free-text terms shorter than this are ignored by search.
const minFreeTextRunes = 2

type ListingUsecase struct {
	listingRepo  domain.ListingRepository
	valueRepo    domain.AttributeValueRepository
	favoriteRepo domain.FavoriteRepository
	categoryRepo domain.CategoryRepository
	subRepo      domain.SubCategoryRepository
	cache        ListingCache
	publisher    EventPublisher
	metrics      *metrics.MetricsManager
	logger       *logger.Logger
}

func NewListingUsecase(
	listingRepo domain.ListingRepository,
	valueRepo domain.AttributeValueRepository,
	favoriteRepo domain.FavoriteRepository,
	categoryRepo domain.CategoryRepository,
	subRepo domain.SubCategoryRepository,
	cache ListingCache,
	publisher EventPublisher,
	mm *metrics.MetricsManager,
	log *logger.Logger,
) *ListingUsecase {
	return &ListingUsecase{
		listingRepo:  listingRepo,
		valueRepo:    valueRepo,
		favoriteRepo: favoriteRepo,
		categoryRepo: categoryRepo,
		subRepo:      subRepo,
		cache:        cache,
		publisher:    publisher,
		metrics:      mm,
		logger:       log,
	}
}

type CreateListingInput struct {
	UserID        string
	CategoryID    string
	SubCategoryID string
	Title         string
	Description   string
	City          string
	Price         float64
	Brand         string
	Condition     domain.ListingCondition
	Photos        []string
}

func (uc *ListingUsecase) CreateListing(ctx context.Context, input CreateListingInput) (*domain.Listing, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if _, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	if input.SubCategoryID != "" {
		sub, err := uc.subRepo.FindByID(ctx, input.SubCategoryID)
		if err != nil {
			return nil, err
		}
		if sub.CategoryID != input.CategoryID {
			return nil, fmt.Errorf("%w: sub-category does not belong to the category", ErrInvalidInput)
		}
	}

	now := time.Now().UTC()
	listing := &domain.Listing{
		UserID:        input.UserID,
		CategoryID:    input.CategoryID,
		SubCategoryID: input.SubCategoryID,
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		City:          input.City,
		Price:         input.Price,
		Brand:         input.Brand,
		Condition:     input.Condition,
		Photos:        input.Photos,
		IsActive:      true,
		PublishedAt:   now,
	}
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ListingsCreatedTotal.Inc()
	}
	if uc.publisher != nil {
		if err := uc.publisher.PublishListingCreated(ctx, listing.ID, listing.UserID, listing.CategoryID); err != nil {
			uc.logger.Warn("failed to publish listing.created", zap.Error(err), zap.String("listing_id", listing.ID))
		}
	}
	uc.logger.Info("listing created", zap.String("listing_id", listing.ID), zap.String("user_id", listing.UserID))
	return listing, nil
}

type UpdateListingInput struct {
	Title       string
	Description string
	City        string
	Price       *float64
	Brand       string
	Condition   domain.ListingCondition
	Photos      []string
	IsActive    *bool
}

func (uc *ListingUsecase) UpdateListing(ctx context.Context, listingID, actorID string, actorRole domain.UserRole, input UpdateListingInput) (*domain.Listing, error) {
	listing, err := uc.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.UserID != actorID && actorRole != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	if input.Title != "" {
		listing.Title = strings.TrimSpace(input.Title)
	}
	if input.Description != "" {
		listing.Description = input.Description
	}
	if input.City != "" {
		listing.City = input.City
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		listing.Price = *input.Price
	}
	if input.Brand != "" {
		listing.Brand = input.Brand
	}
	if input.Condition != "" {
		listing.Condition = input.Condition
	}
	if input.Photos != nil {
		listing.Photos = input.Photos
	}
	if input.IsActive != nil {
		listing.IsActive = *input.IsActive
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	uc.invalidateListing(ctx, listingID)
	return listing, nil
}

// DeleteListing removes the listing and cascades to its attribute values and
// favorites. Dependents are deleted before the listing itself so a failure
// never strands values without an owner.
func (uc *ListingUsecase) DeleteListing(ctx context.Context, listingID, actorID string, actorRole domain.UserRole) error {
	listing, err := uc.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.UserID != actorID && actorRole != domain.RoleAdmin {
		return ErrForbidden
	}

	valuesDeleted, err := uc.valueRepo.DeleteByListingID(ctx, listingID)
	if err != nil {
		return fmt.Errorf("failed to delete attribute values of listing %s: %w", listingID, err)
	}
	favoritesDeleted, err := uc.favoriteRepo.DeleteByListingID(ctx, listingID)
	if err != nil {
		return fmt.Errorf("failed to delete favorites of listing %s: %w", listingID, err)
	}
	if err := uc.listingRepo.Delete(ctx, listingID); err != nil {
		return err
	}

	uc.invalidateListing(ctx, listingID)
	if uc.metrics != nil {
		uc.metrics.ListingsDeletedTotal.Inc()
	}
	if uc.publisher != nil {
		if err := uc.publisher.PublishListingDeleted(ctx, listingID, valuesDeleted); err != nil {
			uc.logger.Warn("failed to publish listing.deleted", zap.Error(err), zap.String("listing_id", listingID))
		}
	}
	uc.logger.Info("listing deleted",
		zap.String("listing_id", listingID),
		zap.Int64("values_deleted", valuesDeleted),
		zap.Int64("favorites_deleted", favoritesDeleted))
	return nil
}

// GetListingByID reads through the cache and counts the view. A failed view
// increment is logged, not surfaced.
func (uc *ListingUsecase) GetListingByID(ctx context.Context, listingID string) (*domain.Listing, error) {
	var listing *domain.Listing
	if uc.cache != nil {
		cached, err := uc.cache.GetListing(ctx, listingID)
		if err != nil {
			uc.logger.Warn("failed to read listing from cache", zap.Error(err), zap.String("listing_id", listingID))
		} else if cached != nil {
			listing = cached
		}
	}
	if listing == nil {
		found, err := uc.listingRepo.FindByID(ctx, listingID)
		if err != nil {
			return nil, err
		}
		listing = found
		if uc.cache != nil {
			if err := uc.cache.SetListing(ctx, listing); err != nil {
				uc.logger.Warn("failed to cache listing", zap.Error(err), zap.String("listing_id", listingID))
			}
		}
	}

	if err := uc.listingRepo.IncrementViews(ctx, listingID); err != nil {
		uc.logger.Warn("failed to increment listing views", zap.Error(err), zap.String("listing_id", listingID))
	}
	return listing, nil
}

// SearchListings normalizes the filter and delegates to the repository. Free
// text below the minimum length behaves as if it was not provided.
func (uc *ListingUsecase) SearchListings(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	filter.FreeText = strings.TrimSpace(filter.FreeText)
	if utf8.RuneCountInString(filter.FreeText) < minFreeTextRunes {
		filter.FreeText = ""
	}
	if filter.Sort == "" {
		filter.Sort = domain.SortRecent
	}
	return uc.listingRepo.FindByFilter(ctx, filter)
}

func (uc *ListingUsecase) invalidateListing(ctx context.Context, listingID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeleteListing(ctx, listingID); err != nil {
		uc.logger.Warn("failed to invalidate listing cache", zap.Error(err), zap.String("listing_id", listingID))
	}
}
