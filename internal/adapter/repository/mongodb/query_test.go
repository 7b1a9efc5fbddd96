package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

func floatPtr(f float64) *float64 { return &f }

func TestBuildListingQuery_NoFilters(t *testing.T) {
	query, ok := buildListingQuery(domain.ListingFilter{})

	require.True(t, ok)
	assert.Equal(t, bson.M{"is_active": true}, query)
}

func TestBuildListingQuery_InvertedPriceRangeNeverMatches(t *testing.T) {
	_, ok := buildListingQuery(domain.ListingFilter{
		MinPrice: floatPtr(100),
		MaxPrice: floatPtr(50),
	})

	assert.False(t, ok)
}

func TestBuildListingQuery_PriceBounds(t *testing.T) {
	query, ok := buildListingQuery(domain.ListingFilter{
		MinPrice: floatPtr(50),
		MaxPrice: floatPtr(100),
	})

	require.True(t, ok)
	assert.Equal(t, bson.M{"$gte": 50.0, "$lte": 100.0}, query["price"])

	// equal bounds are a valid point query
	query, ok = buildListingQuery(domain.ListingFilter{
		MinPrice: floatPtr(75),
		MaxPrice: floatPtr(75),
	})
	require.True(t, ok)
	assert.Equal(t, bson.M{"$gte": 75.0, "$lte": 75.0}, query["price"])
}

func TestBuildListingQuery_ShortFreeTextIgnored(t *testing.T) {
	query, ok := buildListingQuery(domain.ListingFilter{FreeText: "a"})

	require.True(t, ok)
	_, hasOr := query["$or"]
	assert.False(t, hasOr)
}

func TestBuildListingQuery_FreeTextSearchesTitleAndDescription(t *testing.T) {
	query, ok := buildListingQuery(domain.ListingFilter{FreeText: "vélo"})

	require.True(t, ok)
	or, hasOr := query["$or"].(bson.A)
	require.True(t, hasOr)
	assert.Len(t, or, 2)
}

func TestBuildListingQuery_CityIsCaseInsensitive(t *testing.T) {
	query, ok := buildListingQuery(domain.ListingFilter{City: "Paris"})

	require.True(t, ok)
	pattern, isRegex := query["city"].(primitive.Regex)
	require.True(t, isRegex)
	assert.Equal(t, "i", pattern.Options)
	assert.Equal(t, "Paris", pattern.Pattern)
}

func TestBuildListingQuery_IncludeInactive(t *testing.T) {
	query, ok := buildListingQuery(domain.ListingFilter{IncludeInactive: true})

	require.True(t, ok)
	_, hasActive := query["is_active"]
	assert.False(t, hasActive)
}

func TestBuildListingSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "published_at", Value: -1}}, buildListingSort(domain.SortRecent))
	assert.Equal(t, bson.D{{Key: "published_at", Value: 1}}, buildListingSort(domain.SortOldest))
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, buildListingSort(domain.SortPriceAsc))
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, buildListingSort(domain.SortPriceDesc))
	assert.Equal(t, bson.D{{Key: "views", Value: -1}}, buildListingSort(domain.SortPopularity))
	// anything unknown falls back to recent
	assert.Equal(t, bson.D{{Key: "published_at", Value: -1}}, buildListingSort("n'importe"))
}

func TestBuildValueMatch(t *testing.T) {
	// plain string: only the string candidate
	assert.Len(t, buildValueMatch("rouge"), 1)

	// numeric raw value matches both the string and the parsed number
	candidates := buildValueMatch("85")
	require.Len(t, candidates, 2)
	assert.Contains(t, candidates, bson.M{"value": "85"})
	assert.Contains(t, candidates, bson.M{"value": 85.0})

	// boolean raw value is compared string-normalized
	candidates = buildValueMatch("true")
	require.Len(t, candidates, 2)
	assert.Contains(t, candidates, bson.M{"value": "true"})
	assert.Contains(t, candidates, bson.M{"value": true})
}
