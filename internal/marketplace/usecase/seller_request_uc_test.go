package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

func newSellerRequestUsecaseForTest() (*SellerRequestUsecase, *MockSellerRequestRepository, *MockUserRepository, *MockMailSender, *MockEventPublisher) {
	requestRepo := new(MockSellerRequestRepository)
	userRepo := new(MockUserRepository)
	mailSender := new(MockMailSender)
	publisher := new(MockEventPublisher)
	uc := NewSellerRequestUsecase(requestRepo, userRepo, mailSender, publisher, nil, logger.NewNop())
	return uc, requestRepo, userRepo, mailSender, publisher
}

func TestSubmit_CreatesPendingRequest(t *testing.T) {
	uc, requestRepo, userRepo, _, _ := newSellerRequestUsecaseForTest()

	userRepo.On("FindByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Role: domain.RoleUser}, nil)
	requestRepo.On("FindPendingByUserID", mock.Anything, "user-1").
		Return(nil, domain.ErrSellerRequestNotFound)
	requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SellerRequest")).Return(nil)

	request, err := uc.Submit(context.Background(), "user-1", "je vends des vélos")

	require.NoError(t, err)
	assert.Equal(t, domain.SellerRequestPending, request.Status)
	assert.Equal(t, "user-1", request.UserID)
}

func TestSubmit_SecondPendingRequestRejected(t *testing.T) {
	uc, requestRepo, userRepo, _, _ := newSellerRequestUsecaseForTest()

	userRepo.On("FindByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Role: domain.RoleUser}, nil)
	requestRepo.On("FindPendingByUserID", mock.Anything, "user-1").
		Return(&domain.SellerRequest{ID: "req-1", Status: domain.SellerRequestPending}, nil)

	_, err := uc.Submit(context.Background(), "user-1", "encore")

	assert.ErrorIs(t, err, domain.ErrDuplicateSellerRequest)
	requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_SellerCannotReapply(t *testing.T) {
	uc, requestRepo, userRepo, _, _ := newSellerRequestUsecaseForTest()

	userRepo.On("FindByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Role: domain.RoleSeller}, nil)

	_, err := uc.Submit(context.Background(), "user-1", "re")

	assert.ErrorIs(t, err, ErrAlreadySeller)
	requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDecide_ApprovalPromotesUser(t *testing.T) {
	uc, requestRepo, userRepo, mailSender, publisher := newSellerRequestUsecaseForTest()

	request := &domain.SellerRequest{ID: "req-1", UserID: "user-1", Status: domain.SellerRequestPending}
	requestRepo.On("FindByID", mock.Anything, "req-1").Return(request, nil)
	requestRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.SellerRequest")).Return(nil)
	userRepo.On("UpdateRole", mock.Anything, "user-1", domain.RoleSeller).Return(nil)
	userRepo.On("FindByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Username: "alice", Email: "alice@example.com"}, nil)
	mailSender.On("SendSellerRequestDecision", "alice@example.com", "alice", true).Return(nil)
	publisher.On("PublishSellerRequestDecided", mock.Anything, "req-1", "user-1", true).Return(nil)

	decided, err := uc.Decide(context.Background(), "req-1", "admin-1", true)

	require.NoError(t, err)
	assert.Equal(t, domain.SellerRequestApproved, decided.Status)
	assert.Equal(t, "admin-1", decided.ReviewedBy)
	require.NotNil(t, decided.ReviewedAt)
	userRepo.AssertCalled(t, "UpdateRole", mock.Anything, "user-1", domain.RoleSeller)
	mailSender.AssertCalled(t, "SendSellerRequestDecision", "alice@example.com", "alice", true)
}

func TestDecide_RejectionKeepsRole(t *testing.T) {
	uc, requestRepo, userRepo, mailSender, publisher := newSellerRequestUsecaseForTest()

	request := &domain.SellerRequest{ID: "req-1", UserID: "user-1", Status: domain.SellerRequestPending}
	requestRepo.On("FindByID", mock.Anything, "req-1").Return(request, nil)
	requestRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.SellerRequest")).Return(nil)
	userRepo.On("FindByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Username: "bob", Email: "bob@example.com"}, nil)
	mailSender.On("SendSellerRequestDecision", "bob@example.com", "bob", false).Return(nil)
	publisher.On("PublishSellerRequestDecided", mock.Anything, "req-1", "user-1", false).Return(nil)

	decided, err := uc.Decide(context.Background(), "req-1", "admin-1", false)

	require.NoError(t, err)
	assert.Equal(t, domain.SellerRequestRejected, decided.Status)
	userRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecide_AlreadyDecidedRejected(t *testing.T) {
	uc, requestRepo, _, _, _ := newSellerRequestUsecaseForTest()

	request := &domain.SellerRequest{ID: "req-1", UserID: "user-1", Status: domain.SellerRequestApproved}
	requestRepo.On("FindByID", mock.Anything, "req-1").Return(request, nil)

	_, err := uc.Decide(context.Background(), "req-1", "admin-1", false)

	assert.ErrorIs(t, err, ErrAlreadyDecided)
	requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
