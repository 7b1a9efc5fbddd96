package domain

import "context"

type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	Update(ctx context.Context, listing *Listing) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Listing, error)
	FindByFilter(ctx context.Context, filter ListingFilter) ([]*Listing, error)
	IncrementViews(ctx context.Context, id string) error
}

type AttributeDefinitionRepository interface {
	Create(ctx context.Context, def *AttributeDefinition) error
	Update(ctx context.Context, def *AttributeDefinition) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*AttributeDefinition, error)
	// FindByCategory returns active definitions sorted by Order, then Name.
	FindByCategory(ctx context.Context, categoryID string) ([]*AttributeDefinition, error)
	// FindAllByCategory also includes inactive definitions. Used by the
	// category cascade.
	FindAllByCategory(ctx context.Context, categoryID string) ([]*AttributeDefinition, error)
}

type AttributeValueRepository interface {
	// Upsert writes or replaces the value for (value.ListingID, value.AttributeID).
	Upsert(ctx context.Context, value *AttributeValue) error
	FindByListingID(ctx context.Context, listingID string) ([]*AttributeValue, error)
	DeleteByListingID(ctx context.Context, listingID string) (int64, error)
	DeleteByAttributeID(ctx context.Context, attributeID string) (int64, error)
	// FindListingIDsByValue returns the IDs of listings whose stored value
	// for the given definition equals the raw value under string-normalized
	// comparison.
	FindListingIDsByValue(ctx context.Context, attributeID, rawValue string) ([]string, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Category, error)
	FindAll(ctx context.Context) ([]*Category, error)
}

type SubCategoryRepository interface {
	Create(ctx context.Context, sub *SubCategory) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*SubCategory, error)
	FindByCategory(ctx context.Context, categoryID string) ([]*SubCategory, error)
	DeleteByCategory(ctx context.Context, categoryID string) (int64, error)
}

type FavoriteRepository interface {
	Add(ctx context.Context, favorite *Favorite) error
	Remove(ctx context.Context, userID, listingID string) error
	FindByUserID(ctx context.Context, userID string) ([]*Favorite, error)
	DeleteByListingID(ctx context.Context, listingID string) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateRole(ctx context.Context, id string, role UserRole) error
}

type SellerRequestRepository interface {
	Create(ctx context.Context, request *SellerRequest) error
	Update(ctx context.Context, request *SellerRequest) error
	FindByID(ctx context.Context, id string) (*SellerRequest, error)
	FindPending(ctx context.Context) ([]*SellerRequest, error)
	FindPendingByUserID(ctx context.Context, userID string) (*SellerRequest, error)
}
