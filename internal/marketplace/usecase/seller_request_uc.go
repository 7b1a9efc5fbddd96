package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
	"github.com/annonceo/marketplace-service/internal/platform/metrics"
)

type SellerRequestUsecase struct {
	requestRepo domain.SellerRequestRepository
	userRepo    domain.UserRepository
	mailer      MailSender
	publisher   EventPublisher
	metrics     *metrics.MetricsManager
	logger      *logger.Logger
}

func NewSellerRequestUsecase(
	requestRepo domain.SellerRequestRepository,
	userRepo domain.UserRepository,
	mailer MailSender,
	publisher EventPublisher,
	mm *metrics.MetricsManager,
	log *logger.Logger,
) *SellerRequestUsecase {
	return &SellerRequestUsecase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		publisher:   publisher,
		metrics:     mm,
		logger:      log,
	}
}

// Submit files a seller request for the user. A user holds at most one
// pending request at a time.
func (uc *SellerRequestUsecase) Submit(ctx context.Context, userID, message string) (*domain.SellerRequest, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleUser {
		return nil, ErrAlreadySeller
	}

	existing, err := uc.requestRepo.FindPendingByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrSellerRequestNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSellerRequest
	}

	request := &domain.SellerRequest{
		UserID:  userID,
		Message: message,
		Status:  domain.SellerRequestPending,
	}
	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.SellerRequestsTotal.WithLabelValues("submitted").Inc()
	}
	uc.logger.Info("seller request submitted", zap.String("request_id", request.ID), zap.String("user_id", userID))
	return request, nil
}

func (uc *SellerRequestUsecase) ListPending(ctx context.Context) ([]*domain.SellerRequest, error) {
	return uc.requestRepo.FindPending(ctx)
}

// Decide approves or rejects a pending request. Approval promotes the user to
// the seller role. The notification email and event are best effort.
func (uc *SellerRequestUsecase) Decide(ctx context.Context, requestID, reviewerID string, approve bool) (*domain.SellerRequest, error) {
	request, err := uc.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.SellerRequestPending {
		return nil, ErrAlreadyDecided
	}

	now := time.Now().UTC()
	request.Status = domain.SellerRequestRejected
	if approve {
		request.Status = domain.SellerRequestApproved
	}
	request.ReviewedBy = reviewerID
	request.ReviewedAt = &now
	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	if approve {
		if err := uc.userRepo.UpdateRole(ctx, request.UserID, domain.RoleSeller); err != nil {
			return nil, err
		}
	}

	if uc.metrics != nil {
		uc.metrics.SellerRequestsTotal.WithLabelValues(string(request.Status)).Inc()
	}
	if uc.mailer != nil {
		if user, err := uc.userRepo.FindByID(ctx, request.UserID); err == nil {
			if err := uc.mailer.SendSellerRequestDecision(user.Email, user.Username, approve); err != nil {
				uc.logger.Warn("failed to send seller request decision email", zap.Error(err), zap.String("request_id", requestID))
			}
		}
	}
	if uc.publisher != nil {
		if err := uc.publisher.PublishSellerRequestDecided(ctx, requestID, request.UserID, approve); err != nil {
			uc.logger.Warn("failed to publish seller_request.decided", zap.Error(err), zap.String("request_id", requestID))
		}
	}
	uc.logger.Info("seller request decided",
		zap.String("request_id", requestID),
		zap.String("status", string(request.Status)),
		zap.String("reviewed_by", reviewerID))
	return request, nil
}
