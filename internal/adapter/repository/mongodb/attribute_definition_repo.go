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

// AttributeDefinitionRepository relies on the unique (category_id, name)
// index created by EnsureIndexes to reject duplicates.
type AttributeDefinitionRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewAttributeDefinitionRepository(db *mongo.Database, log *logger.Logger) *AttributeDefinitionRepository {
	return &AttributeDefinitionRepository{
		collection: db.Collection("attribute_definitions"),
		logger:     log,
	}
}

func (r *AttributeDefinitionRepository) Create(ctx context.Context, def *domain.AttributeDefinition) error {
	now := time.Now().UTC()
	def.CreatedAt = now
	def.UpdatedAt = now

	doc, err := toAttributeDefinitionDocument(def)
	if err != nil {
		return fmt.Errorf("failed to prepare attribute definition for database: %w", err)
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateAttribute
		}
		r.logger.Error("AttributeDefinitionRepository.Create: InsertOne failed", zap.Error(err))
		return err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to retrieve generated attribute definition ID")
	}
	def.ID = oid.Hex()
	return nil
}

func (r *AttributeDefinitionRepository) Update(ctx context.Context, def *domain.AttributeDefinition) error {
	def.UpdatedAt = time.Now().UTC()
	doc, err := toAttributeDefinitionDocument(def)
	if err != nil {
		return fmt.Errorf("failed to prepare attribute definition for database: %w", err)
	}
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateAttribute
		}
		r.logger.Error("AttributeDefinitionRepository.Update: ReplaceOne failed", zap.Error(err), zap.String("attribute_id", def.ID))
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrAttributeNotFound
	}
	return nil
}

func (r *AttributeDefinitionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAttributeNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.logger.Error("AttributeDefinitionRepository.Delete: DeleteOne failed", zap.Error(err), zap.String("attribute_id", id))
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrAttributeNotFound
	}
	return nil
}

func (r *AttributeDefinitionRepository) FindByID(ctx context.Context, id string) (*domain.AttributeDefinition, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAttributeNotFound
	}
	var doc attributeDefinitionDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrAttributeNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainAttributeDefinition(&doc), nil
}

func (r *AttributeDefinitionRepository) FindByCategory(ctx context.Context, categoryID string) ([]*domain.AttributeDefinition, error) {
	return r.findByCategory(ctx, bson.M{"category_id": categoryID, "is_active": true})
}

func (r *AttributeDefinitionRepository) FindAllByCategory(ctx context.Context, categoryID string) ([]*domain.AttributeDefinition, error) {
	return r.findByCategory(ctx, bson.M{"category_id": categoryID})
}

func (r *AttributeDefinitionRepository) findByCategory(ctx context.Context, query bson.M) ([]*domain.AttributeDefinition, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "name", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		r.logger.Error("AttributeDefinitionRepository.findByCategory: Find failed", zap.Error(err))
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*attributeDefinitionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	defs := make([]*domain.AttributeDefinition, 0, len(docs))
	for _, doc := range docs {
		defs = append(defs, toDomainAttributeDefinition(doc))
	}
	return defs, nil
}
