package domain

import "errors"

var (
	ErrListingNotFound        = errors.New("listing not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrSubCategoryNotFound    = errors.New("sub-category not found")
	ErrAttributeNotFound      = errors.New("attribute definition not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrFavoriteNotFound       = errors.New("favorite not found")
	ErrSellerRequestNotFound  = errors.New("seller request not found")
	ErrDuplicateAttribute     = errors.New("attribute with this name already exists for the category")
	ErrInvalidDefinition      = errors.New("invalid attribute definition")
	ErrDuplicateFavorite      = errors.New("favorite already exists")
	ErrDuplicateEmail         = errors.New("email already registered")
	ErrDuplicateSellerRequest = errors.New("a pending seller request already exists for this user")
)
