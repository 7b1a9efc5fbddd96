package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

type ListingRepository struct {
	collection *mongo.Collection
	values     domain.AttributeValueRepository
	logger     *logger.Logger
}

func NewListingRepository(db *mongo.Database, values domain.AttributeValueRepository, log *logger.Logger) *ListingRepository {
	return &ListingRepository{
		collection: db.Collection("listings"),
		values:     values,
		logger:     log,
	}
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	now := time.Now().UTC()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	if listing.PublishedAt.IsZero() {
		listing.PublishedAt = now
	}

	doc, err := toListingDocument(listing)
	if err != nil {
		return fmt.Errorf("failed to prepare listing for database: %w", err)
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		r.logger.Error("ListingRepository.Create: InsertOne failed", zap.Error(err))
		return err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to retrieve generated listing ID")
	}
	listing.ID = oid.Hex()
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	listing.UpdatedAt = time.Now().UTC()
	doc, err := toListingDocument(listing)
	if err != nil {
		return fmt.Errorf("failed to prepare listing for database: %w", err)
	}
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		r.logger.Error("ListingRepository.Update: ReplaceOne failed", zap.Error(err), zap.String("listing_id", listing.ID))
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrListingNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("ListingRepository.Delete: DeleteOne failed", zap.Error(err), zap.String("listing_id", id))
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrListingNotFound
	}
	var doc listingDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainListing(&doc), nil
}

func (r *ListingRepository) IncrementViews(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrListingNotFound
	}
	_, err = r.collection.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

// FindByFilter composes a single query from the optional search parameters.
// Attribute filters are resolved first against attribute_values: each
// (attribute, expected value) pair yields a set of listing IDs and the sets
// are intersected, the document-store equivalent of an AND-join.
func (r *ListingRepository) FindByFilter(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	query, possible := buildListingQuery(filter)
	if !possible {
		return []*domain.Listing{}, nil
	}

	if len(filter.AttributeFilters) > 0 {
		ids, err := r.listingIDsMatchingAttributes(ctx, filter.AttributeFilters)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []*domain.Listing{}, nil
		}
		oids := make([]primitive.ObjectID, 0, len(ids))
		for _, id := range ids {
			oid, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				continue
			}
			oids = append(oids, oid)
		}
		query["_id"] = bson.M{"$in": oids}
	}

	findOptions := options.Find().SetSort(buildListingSort(filter.Sort))
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		r.logger.Error("ListingRepository.FindByFilter: Find failed", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*listingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return toDomainListings(docs), nil
}

func (r *ListingRepository) listingIDsMatchingAttributes(ctx context.Context, filters map[string]string) ([]string, error) {
	var result map[string]bool
	for attributeID, raw := range filters {
		listingIDs, err := r.values.FindListingIDsByValue(ctx, attributeID, raw)
		if err != nil {
			return nil, err
		}

		matched := make(map[string]bool, len(listingIDs))
		for _, id := range listingIDs {
			matched[id] = true
		}
		if result == nil {
			result = matched
			continue
		}
		for id := range result {
			if !matched[id] {
				delete(result, id)
			}
		}
		if len(result) == 0 {
			return nil, nil
		}
	}

	ids := make([]string, 0, len(result))
	for id := range result {
		ids = append(ids, id)
	}
	return ids, nil
}
