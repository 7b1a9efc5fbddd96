package domain

import "time"

type ListingCondition string

const (
	ConditionNew      ListingCondition = "neuf"
	ConditionLikeNew  ListingCondition = "comme-neuf"
	ConditionGood     ListingCondition = "bon-etat"
	ConditionFair     ListingCondition = "etat-moyen"
	ConditionForParts ListingCondition = "pour-pieces"
)

type Listing struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	CategoryID    string           `json:"category_id"`
	SubCategoryID string           `json:"sub_category_id,omitempty"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	City          string           `json:"city"`
	Price         float64          `json:"price"`
	Brand         string           `json:"brand,omitempty"`
	Condition     ListingCondition `json:"condition,omitempty"`
	Photos        []string         `json:"photos,omitempty"`
	Views         int64            `json:"views"`
	IsActive      bool             `json:"is_active"`
	PublishedAt   time.Time        `json:"published_at"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type ListingSort string

const (
	SortRecent     ListingSort = "recent"
	SortOldest     ListingSort = "oldest"
	SortPriceAsc   ListingSort = "price-asc"
	SortPriceDesc  ListingSort = "price-desc"
	SortPopularity ListingSort = "popularity"
)

// ListingFilter carries the optional search parameters. A zero value for a
// field (nil pointer, empty string, empty map) means "no constraint".
type ListingFilter struct {
	CategoryID    string
	SubCategoryID string
	City          string
	MinPrice      *float64
	MaxPrice      *float64
	FreeText      string
	Condition     ListingCondition
	// AttributeFilters maps attribute definition IDs to the expected raw
	// value. All pairs must match (AND-combined).
	AttributeFilters map[string]string
	Sort             ListingSort
	// IncludeInactive widens the search universe beyond active listings.
	// Set by the admin search override and the backfill job.
	IncludeInactive bool
}
