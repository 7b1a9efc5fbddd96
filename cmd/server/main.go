package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/annonceo/marketplace-service/internal/adapter/http/handler"
	"github.com/annonceo/marketplace-service/internal/adapter/http/router"
	natsadapter "github.com/annonceo/marketplace-service/internal/adapter/messaging/nats"
	"github.com/annonceo/marketplace-service/internal/adapter/repository/cache"
	"github.com/annonceo/marketplace-service/internal/adapter/repository/mongodb"
	"github.com/annonceo/marketplace-service/internal/config"
	"github.com/annonceo/marketplace-service/internal/mailer"
	"github.com/annonceo/marketplace-service/internal/marketplace/attrschema"
	"github.com/annonceo/marketplace-service/internal/marketplace/usecase"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
	"github.com/annonceo/marketplace-service/internal/platform/metrics"
	"github.com/annonceo/marketplace-service/internal/platform/tracer"
)

const serviceName = "marketplace"

func main() {
	appLogger := logger.NewLogger()
	defer appLogger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		appLogger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())
	db := mongoClient.Database(cfg.MongoDB)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatal("failed to ensure indexes", zap.Error(err))
	}

	marketplaceCache, err := cache.NewMarketplaceCache(cfg.RedisAddress)
	if err != nil {
		appLogger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer marketplaceCache.Close()

	publisher, err := natsadapter.NewPublisher(cfg.NATSURL)
	if err != nil {
		appLogger.Fatal("failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()

	tp := tracer.InitTracer(serviceName)
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			appLogger.Warn("failed to shut down tracer", zap.Error(err))
		}
	}()

	mm := metrics.NewMetricsManager(serviceName)
	go func() {
		if err := metrics.StartMetricsServer(cfg.MetricsPort, appLogger, mm.Registry); err != nil && err != http.ErrServerClosed {
			appLogger.Error("metrics server stopped", zap.Error(err))
		}
	}()

	// repositories
	defRepo := mongodb.NewAttributeDefinitionRepository(db, appLogger.Named("attribute_definition_repo"))
	valueRepo := mongodb.NewAttributeValueRepository(db, appLogger.Named("attribute_value_repo"))
	listingRepo := mongodb.NewListingRepository(db, valueRepo, appLogger.Named("listing_repo"))
	categoryRepo := mongodb.NewCategoryRepository(db, appLogger.Named("category_repo"))
	subRepo := mongodb.NewSubCategoryRepository(db, appLogger.Named("sub_category_repo"))
	favoriteRepo := mongodb.NewFavoriteRepository(db, appLogger.Named("favorite_repo"))
	userRepo := mongodb.NewUserRepository(db, appLogger.Named("user_repo"))
	requestRepo := mongodb.NewSellerRequestRepository(db, appLogger.Named("seller_request_repo"))

	locale := language.French
	if cfg.Locale != "fr" {
		if parsed, err := language.Parse(cfg.Locale); err == nil {
			locale = parsed
		}
	}
	formatter := attrschema.NewFormatter(locale)
	mailSender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)

	// usecases
	attributeUC := usecase.NewAttributeUsecase(defRepo, valueRepo, listingRepo, categoryRepo, marketplaceCache, formatter, mm, appLogger.Named("attribute_uc"))
	listingUC := usecase.NewListingUsecase(listingRepo, valueRepo, favoriteRepo, categoryRepo, subRepo, marketplaceCache, publisher, mm, appLogger.Named("listing_uc"))
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, subRepo, defRepo, valueRepo, marketplaceCache, appLogger.Named("category_uc"))
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, listingRepo, appLogger.Named("favorite_uc"))
	userUC := usecase.NewUserUsecase(userRepo, cfg.JWTSecret, appLogger.Named("user_uc"))
	requestUC := usecase.NewSellerRequestUsecase(requestRepo, userRepo, mailSender, publisher, mm, appLogger.Named("seller_request_uc"))

	mux := router.NewRouter(router.Handlers{
		Listing:       handler.NewListingHandler(listingUC, appLogger.Named("listing_handler")),
		Attribute:     handler.NewAttributeHandler(attributeUC, appLogger.Named("attribute_handler")),
		Category:      handler.NewCategoryHandler(categoryUC, appLogger.Named("category_handler")),
		User:          handler.NewUserHandler(userUC, appLogger.Named("user_handler")),
		Favorite:      handler.NewFavoriteHandler(favoriteUC, appLogger.Named("favorite_handler")),
		SellerRequest: handler.NewSellerRequestHandler(requestUC, appLogger.Named("seller_request_handler")),
	}, cfg.JWTSecret, serviceName, appLogger, mm)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: mux,
	}

	go func() {
		appLogger.Info("http server starting", zap.Int("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
