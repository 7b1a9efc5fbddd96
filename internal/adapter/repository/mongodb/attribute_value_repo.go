package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

// AttributeValueRepository relies on the unique (listing_id, attribute_id)
// index: an upsert replaces the previous value for the pair.
type AttributeValueRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewAttributeValueRepository(db *mongo.Database, log *logger.Logger) *AttributeValueRepository {
	return &AttributeValueRepository{
		collection: db.Collection("attribute_values"),
		logger:     log,
	}
}

func (r *AttributeValueRepository) Upsert(ctx context.Context, value *domain.AttributeValue) error {
	now := time.Now().UTC()
	if value.CreatedAt.IsZero() {
		value.CreatedAt = now
	}
	value.UpdatedAt = now

	doc, err := toAttributeValueDocument(value)
	if err != nil {
		return fmt.Errorf("failed to prepare attribute value for database: %w", err)
	}

	filter := bson.M{"listing_id": value.ListingID, "attribute_id": value.AttributeID}
	update := bson.M{
		"$set": bson.M{
			"kind":       doc.Kind,
			"value":      doc.Value,
			"updated_at": doc.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"listing_id":   doc.ListingID,
			"attribute_id": doc.AttributeID,
			"created_at":   doc.CreatedAt,
		},
	}
	_, err = r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		r.logger.Error("AttributeValueRepository.Upsert: UpdateOne failed",
			zap.Error(err), zap.String("listing_id", value.ListingID), zap.String("attribute_id", value.AttributeID))
	}
	return err
}

func (r *AttributeValueRepository) FindByListingID(ctx context.Context, listingID string) ([]*domain.AttributeValue, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"listing_id": listingID})
	if err != nil {
		r.logger.Error("AttributeValueRepository.FindByListingID: Find failed", zap.Error(err), zap.String("listing_id", listingID))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*attributeValueDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	values := make([]*domain.AttributeValue, 0, len(docs))
	for _, doc := range docs {
		value, err := toDomainAttributeValue(doc)
		if err != nil {
			// A malformed payload should not hide the listing's other values.
			r.logger.Warn("AttributeValueRepository.FindByListingID: skipping malformed value", zap.Error(err))
			continue
		}
		values = append(values, value)
	}
	return values, nil
}

func (r *AttributeValueRepository) DeleteByListingID(ctx context.Context, listingID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"listing_id": listingID})
	if err != nil {
		r.logger.Error("AttributeValueRepository.DeleteByListingID: DeleteMany failed", zap.Error(err), zap.String("listing_id", listingID))
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *AttributeValueRepository) DeleteByAttributeID(ctx context.Context, attributeID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"attribute_id": attributeID})
	if err != nil {
		r.logger.Error("AttributeValueRepository.DeleteByAttributeID: DeleteMany failed", zap.Error(err), zap.String("attribute_id", attributeID))
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *AttributeValueRepository) FindListingIDsByValue(ctx context.Context, attributeID, rawValue string) ([]string, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"attribute_id": attributeID,
		"$or":          buildValueMatch(rawValue),
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*attributeValueDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ListingID)
	}
	return ids, nil
}
