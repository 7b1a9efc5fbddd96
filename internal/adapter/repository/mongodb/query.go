package mongodb

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

// minFreeTextRunes is the shortest free-text query that becomes a filter.
// Shorter input is treated as "no filter", matching the search box threshold
// on the client side and keeping pathological one-letter scans off the store.
const minFreeTextRunes = 2

// buildListingQuery composes the bson filter for the scalar search
// parameters. Absent parameters impose no constraint. The second return is
// false when the parameters can provably never match anything (an inverted
// price range), in which case no query should be issued at all.
func buildListingQuery(filter domain.ListingFilter) (bson.M, bool) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, false
	}

	query := bson.M{}
	if !filter.IncludeInactive {
		query["is_active"] = true
	}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.SubCategoryID != "" {
		query["sub_category_id"] = filter.SubCategoryID
	}
	if filter.Condition != "" {
		query["condition"] = filter.Condition
	}
	if filter.City != "" {
		query["city"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.City), Options: "i"}
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}

	if utf8.RuneCountInString(filter.FreeText) >= minFreeTextRunes {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.FreeText), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	return query, true
}

func buildListingSort(sort domain.ListingSort) bson.D {
	switch sort {
	case domain.SortOldest:
		return bson.D{{Key: "published_at", Value: 1}}
	case domain.SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case domain.SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case domain.SortPopularity:
		return bson.D{{Key: "views", Value: -1}}
	default: // SortRecent is the default ordering
		return bson.D{{Key: "published_at", Value: -1}}
	}
}

// buildValueMatch returns the alternatives a raw expected value can match
// against the typed payloads in attribute_values. Booleans compare
// string-normalized ("true"/"false"), numbers by parsed value.
func buildValueMatch(raw string) bson.A {
	candidates := bson.A{bson.M{"value": raw}}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		candidates = append(candidates, bson.M{"value": f})
	}
	if raw == "true" || raw == "false" {
		candidates = append(candidates, bson.M{"value": raw == "true"})
	}
	return candidates
}
