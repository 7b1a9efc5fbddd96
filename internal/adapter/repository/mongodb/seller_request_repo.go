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

type SellerRequestRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewSellerRequestRepository(db *mongo.Database, log *logger.Logger) *SellerRequestRepository {
	return &SellerRequestRepository{collection: db.Collection("seller_requests"), logger: log}
}

func (r *SellerRequestRepository) Create(ctx context.Context, request *domain.SellerRequest) error {
	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now

	res, err := r.collection.InsertOne(ctx, &sellerRequestDocument{
		UserID:    request.UserID,
		Message:   request.Message,
		Status:    request.Status,
		CreatedAt: request.CreatedAt,
		UpdatedAt: request.UpdatedAt,
	})
	if err != nil {
		r.logger.Error("SellerRequestRepository.Create: InsertOne failed", zap.Error(err), zap.String("user_id", request.UserID))
		return err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to retrieve generated seller request ID")
	}
	request.ID = oid.Hex()
	return nil
}

func (r *SellerRequestRepository) Update(ctx context.Context, request *domain.SellerRequest) error {
	oid, err := primitive.ObjectIDFromHex(request.ID)
	if err != nil {
		return domain.ErrSellerRequestNotFound
	}
	request.UpdatedAt = time.Now().UTC()
	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"status":      request.Status,
		"reviewed_by": request.ReviewedBy,
		"reviewed_at": request.ReviewedAt,
		"updated_at":  request.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSellerRequestNotFound
	}
	return nil
}

func (r *SellerRequestRepository) FindByID(ctx context.Context, id string) (*domain.SellerRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSellerRequestNotFound
	}
	var doc sellerRequestDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrSellerRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainSellerRequest(&doc), nil
}

func (r *SellerRequestRepository) FindPending(ctx context.Context) ([]*domain.SellerRequest, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"status": domain.SellerRequestPending},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*sellerRequestDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	requests := make([]*domain.SellerRequest, 0, len(docs))
	for _, doc := range docs {
		requests = append(requests, toDomainSellerRequest(doc))
	}
	return requests, nil
}

func (r *SellerRequestRepository) FindPendingByUserID(ctx context.Context, userID string) (*domain.SellerRequest, error) {
	var doc sellerRequestDocument
	err := r.collection.FindOne(ctx, bson.M{
		"user_id": userID,
		"status":  domain.SellerRequestPending,
	}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrSellerRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainSellerRequest(&doc), nil
}
