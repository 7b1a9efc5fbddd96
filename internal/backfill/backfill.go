package backfill

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/annonceo/marketplace-service/internal/marketplace/attrschema"
	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

// Runner is a one-shot batch job that infers attribute values and
// sub-categories for legacy listings from their free text. It is idempotent:
// a value is only written when the listing has none for that attribute, and a
// sub-category only when the listing has none at all.
type Runner struct {
	listingRepo domain.ListingRepository
	defRepo     domain.AttributeDefinitionRepository
	valueRepo   domain.AttributeValueRepository
	subRepo     domain.SubCategoryRepository
	logger      *logger.Logger
}

func NewRunner(
	listingRepo domain.ListingRepository,
	defRepo domain.AttributeDefinitionRepository,
	valueRepo domain.AttributeValueRepository,
	subRepo domain.SubCategoryRepository,
	log *logger.Logger,
) *Runner {
	return &Runner{
		listingRepo: listingRepo,
		defRepo:     defRepo,
		valueRepo:   valueRepo,
		subRepo:     subRepo,
		logger:      log,
	}
}

// Stats summarizes one run.
type Stats struct {
	ListingsScanned       int
	ValuesWritten         int
	SubCategoriesAssigned int
}

// Run walks every listing, inactive ones included, and applies both
// heuristics.
func (r *Runner) Run(ctx context.Context) (*Stats, error) {
	listings, err := r.listingRepo.FindByFilter(ctx, domain.ListingFilter{IncludeInactive: true})
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	for _, listing := range listings {
		stats.ListingsScanned++
		text := normalize(listing.Title + " " + listing.Description)

		written, err := r.backfillValues(ctx, listing, text)
		if err != nil {
			return stats, err
		}
		stats.ValuesWritten += written

		assigned, err := r.assignSubCategory(ctx, listing, text)
		if err != nil {
			return stats, err
		}
		if assigned {
			stats.SubCategoriesAssigned++
		}
	}

	r.logger.Info("backfill finished",
		zap.Int("listings_scanned", stats.ListingsScanned),
		zap.Int("values_written", stats.ValuesWritten),
		zap.Int("sub_categories_assigned", stats.SubCategoriesAssigned))
	return stats, nil
}

func (r *Runner) backfillValues(ctx context.Context, listing *domain.Listing, text string) (int, error) {
	defs, err := r.defRepo.FindByCategory(ctx, listing.CategoryID)
	if err != nil {
		return 0, err
	}
	if len(defs) == 0 {
		return 0, nil
	}

	existing, err := r.valueRepo.FindByListingID(ctx, listing.ID)
	if err != nil {
		return 0, err
	}
	hasValue := make(map[string]bool, len(existing))
	for _, v := range existing {
		hasValue[v.AttributeID] = true
	}

	written := 0
	for _, def := range defs {
		if hasValue[def.ID] {
			continue
		}
		raw, ok := InferValue(def, text)
		if !ok {
			continue
		}
		typed, fieldErr := attrschema.Validate(def, raw)
		if fieldErr != nil || typed == nil {
			continue
		}
		value := &domain.AttributeValue{
			ListingID:   listing.ID,
			AttributeID: def.ID,
			Value:       *typed,
		}
		if err := r.valueRepo.Upsert(ctx, value); err != nil {
			return written, err
		}
		r.logger.Debug("inferred attribute value",
			zap.String("listing_id", listing.ID),
			zap.String("attribute", def.Name),
			zap.String("raw", raw))
		written++
	}
	return written, nil
}

func (r *Runner) assignSubCategory(ctx context.Context, listing *domain.Listing, text string) (bool, error) {
	if listing.SubCategoryID != "" {
		return false, nil
	}
	subs, err := r.subRepo.FindByCategory(ctx, listing.CategoryID)
	if err != nil {
		return false, err
	}
	best := ChooseSubCategory(subs, text)
	if best == nil {
		return false, nil
	}
	listing.SubCategoryID = best.ID
	if err := r.listingRepo.Update(ctx, listing); err != nil {
		return false, err
	}
	return true, nil
}

// InferValue extracts a raw value for the definition from the listing text.
// The result still goes through the validator before being stored.
func InferValue(def *domain.AttributeDefinition, text string) (string, bool) {
	switch def.ValueType {
	case domain.TypeSelect:
		// options first: an option present verbatim in the text always wins
		for _, option := range def.Options {
			if strings.Contains(text, normalize(option)) {
				return option, true
			}
		}
		candidates, ok := valueKeywords[def.Name]
		if !ok {
			return "", false
		}
		for _, option := range def.Options {
			for _, keyword := range candidates[normalize(option)] {
				if strings.Contains(text, keyword) {
					return option, true
				}
			}
		}
		return "", false

	case domain.TypeString:
		candidates, ok := valueKeywords[def.Name]
		if !ok {
			return "", false
		}
		values := make([]string, 0, len(candidates))
		for value := range candidates {
			values = append(values, value)
		}
		sort.Strings(values)
		for _, value := range values {
			if matchScore(text, candidates[value]) > 0 {
				return value, true
			}
		}
		return "", false

	case domain.TypeBoolean:
		keywords, ok := booleanKeywords[def.Name]
		if !ok {
			return "", false
		}
		if matchScore(text, keywords) > 0 {
			return "true", true
		}
		return "", false

	case domain.TypeNumber:
		pattern, ok := numberPatterns[def.Name]
		if !ok {
			return "", false
		}
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			return "", false
		}
		if _, err := strconv.ParseFloat(match[1], 64); err != nil {
			return "", false
		}
		return match[1], true

	default:
		return "", false
	}
}

// ChooseSubCategory scores each sub-category by the summed character length
// of its matched keywords and returns the winner. Ties break
// lexicographically on the sub-category name so reruns are deterministic.
// Returns nil when nothing matches.
func ChooseSubCategory(subs []*domain.SubCategory, text string) *domain.SubCategory {
	var best *domain.SubCategory
	bestScore := 0
	for _, sub := range subs {
		score := matchScore(text, keywordsForSubCategory(sub.Name))
		if score == 0 {
			continue
		}
		if score > bestScore || (score == bestScore && best != nil && sub.Name < best.Name) {
			best = sub
			bestScore = score
		}
	}
	return best
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
