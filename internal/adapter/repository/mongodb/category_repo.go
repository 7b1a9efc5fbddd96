package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

type CategoryRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewCategoryRepository(db *mongo.Database, log *logger.Logger) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection("categories"), logger: log}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	now := time.Now().UTC()
	category.CreatedAt = now
	category.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, &categoryDocument{
		Name:      category.Name,
		Icon:      category.Icon,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	})
	if err != nil {
		r.logger.Error("CategoryRepository.Create: InsertOne failed", zap.Error(err))
		return err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to retrieve generated category ID")
	}
	category.ID = oid.Hex()
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	oid, err := primitive.ObjectIDFromHex(category.ID)
	if err != nil {
		return domain.ErrCategoryNotFound
	}
	category.UpdatedAt = time.Now().UTC()
	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":       category.Name,
		"icon":       category.Icon,
		"updated_at": category.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCategoryNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCategoryNotFound
	}
	var doc categoryDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&doc), nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, toDomainCategory(doc))
	}
	return categories, nil
}

type SubCategoryRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewSubCategoryRepository(db *mongo.Database, log *logger.Logger) *SubCategoryRepository {
	return &SubCategoryRepository{collection: db.Collection("sub_categories"), logger: log}
}

func (r *SubCategoryRepository) Create(ctx context.Context, sub *domain.SubCategory) error {
	now := time.Now().UTC()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, &subCategoryDocument{
		CategoryID: sub.CategoryID,
		Name:       sub.Name,
		Icon:       sub.Icon,
		CreatedAt:  sub.CreatedAt,
		UpdatedAt:  sub.UpdatedAt,
	})
	if err != nil {
		r.logger.Error("SubCategoryRepository.Create: InsertOne failed", zap.Error(err))
		return err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to retrieve generated sub-category ID")
	}
	sub.ID = oid.Hex()
	return nil
}

func (r *SubCategoryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSubCategoryNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrSubCategoryNotFound
	}
	return nil
}

func (r *SubCategoryRepository) FindByID(ctx context.Context, id string) (*domain.SubCategory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSubCategoryNotFound
	}
	var doc subCategoryDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrSubCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainSubCategory(&doc), nil
}

func (r *SubCategoryRepository) FindByCategory(ctx context.Context, categoryID string) ([]*domain.SubCategory, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"category_id": categoryID}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*subCategoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	subs := make([]*domain.SubCategory, 0, len(docs))
	for _, doc := range docs {
		subs = append(subs, toDomainSubCategory(doc))
	}
	return subs, nil
}

func (r *SubCategoryRepository) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
