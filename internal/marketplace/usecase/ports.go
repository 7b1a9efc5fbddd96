package usecase

import (
	"context"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

// ListingCache and DefinitionCache are satisfied by the redis adapter. A nil
// implementation is allowed: usecases treat the cache as best effort.
type ListingCache interface {
	GetListing(ctx context.Context, id string) (*domain.Listing, error)
	SetListing(ctx context.Context, listing *domain.Listing) error
	DeleteListing(ctx context.Context, id string) error
}

type DefinitionCache interface {
	GetDefinitions(ctx context.Context, categoryID string) ([]*domain.AttributeDefinition, error)
	SetDefinitions(ctx context.Context, categoryID string, defs []*domain.AttributeDefinition) error
	DeleteDefinitions(ctx context.Context, categoryID string) error
}

type EventPublisher interface {
	PublishListingCreated(ctx context.Context, listingID, userID, categoryID string) error
	PublishListingDeleted(ctx context.Context, listingID string, valuesDeleted int64) error
	PublishSellerRequestDecided(ctx context.Context, requestID, userID string, approved bool) error
}

type MailSender interface {
	SendSellerRequestDecision(toEmail, username string, approved bool) error
}
