package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/annonceo/marketplace-service/internal/adapter/repository/mongodb"
	"github.com/annonceo/marketplace-service/internal/backfill"
	"github.com/annonceo/marketplace-service/internal/config"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

// One-shot batch job. Run it manually after importing legacy listings; it is
// safe to run more than once.
func main() {
	appLogger := logger.NewLogger().Named("backfill")
	defer appLogger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Fatal("failed to load config", zap.Error(err))
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		appLogger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())
	db := mongoClient.Database(cfg.MongoDB)

	valueRepo := mongodb.NewAttributeValueRepository(db, appLogger)
	runner := backfill.NewRunner(
		mongodb.NewListingRepository(db, valueRepo, appLogger),
		mongodb.NewAttributeDefinitionRepository(db, appLogger),
		valueRepo,
		mongodb.NewSubCategoryRepository(db, appLogger),
		appLogger,
	)

	stats, err := runner.Run(context.Background())
	if err != nil {
		appLogger.Fatal("backfill failed", zap.Error(err))
	}
	appLogger.Info("done",
		zap.Int("listings_scanned", stats.ListingsScanned),
		zap.Int("values_written", stats.ValuesWritten),
		zap.Int("sub_categories_assigned", stats.SubCategoriesAssigned))
}
