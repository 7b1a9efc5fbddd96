package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingRepository) FindByFilter(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Listing), args.Error(1)
}
func (m *MockListingRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAttributeDefinitionRepository struct{ mock.Mock }

func (m *MockAttributeDefinitionRepository) Create(ctx context.Context, def *domain.AttributeDefinition) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}
func (m *MockAttributeDefinitionRepository) Update(ctx context.Context, def *domain.AttributeDefinition) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}
func (m *MockAttributeDefinitionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAttributeDefinitionRepository) FindByID(ctx context.Context, id string) (*domain.AttributeDefinition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttributeDefinition), args.Error(1)
}
func (m *MockAttributeDefinitionRepository) FindByCategory(ctx context.Context, categoryID string) ([]*domain.AttributeDefinition, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AttributeDefinition), args.Error(1)
}
func (m *MockAttributeDefinitionRepository) FindAllByCategory(ctx context.Context, categoryID string) ([]*domain.AttributeDefinition, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AttributeDefinition), args.Error(1)
}

type MockAttributeValueRepository struct{ mock.Mock }

func (m *MockAttributeValueRepository) Upsert(ctx context.Context, value *domain.AttributeValue) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}
func (m *MockAttributeValueRepository) FindByListingID(ctx context.Context, listingID string) ([]*domain.AttributeValue, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AttributeValue), args.Error(1)
}
func (m *MockAttributeValueRepository) DeleteByListingID(ctx context.Context, listingID string) (int64, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAttributeValueRepository) DeleteByAttributeID(ctx context.Context, attributeID string) (int64, error) {
	args := m.Called(ctx, attributeID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAttributeValueRepository) FindListingIDsByValue(ctx context.Context, attributeID, rawValue string) ([]string, error) {
	args := m.Called(ctx, attributeID, rawValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

type MockSubCategoryRepository struct{ mock.Mock }

func (m *MockSubCategoryRepository) Create(ctx context.Context, sub *domain.SubCategory) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}
func (m *MockSubCategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSubCategoryRepository) FindByID(ctx context.Context, id string) (*domain.SubCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubCategory), args.Error(1)
}
func (m *MockSubCategoryRepository) FindByCategory(ctx context.Context, categoryID string) ([]*domain.SubCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SubCategory), args.Error(1)
}
func (m *MockSubCategoryRepository) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type MockFavoriteRepository struct{ mock.Mock }

func (m *MockFavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}
func (m *MockFavoriteRepository) Remove(ctx context.Context, userID, listingID string) error {
	args := m.Called(ctx, userID, listingID)
	return args.Error(0)
}
func (m *MockFavoriteRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Favorite), args.Error(1)
}
func (m *MockFavoriteRepository) DeleteByListingID(ctx context.Context, listingID string) (int64, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role domain.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

type MockSellerRequestRepository struct{ mock.Mock }

func (m *MockSellerRequestRepository) Create(ctx context.Context, request *domain.SellerRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}
func (m *MockSellerRequestRepository) Update(ctx context.Context, request *domain.SellerRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}
func (m *MockSellerRequestRepository) FindByID(ctx context.Context, id string) (*domain.SellerRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellerRequest), args.Error(1)
}
func (m *MockSellerRequestRepository) FindPending(ctx context.Context) ([]*domain.SellerRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SellerRequest), args.Error(1)
}
func (m *MockSellerRequestRepository) FindPendingByUserID(ctx context.Context, userID string) (*domain.SellerRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SellerRequest), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishListingCreated(ctx context.Context, listingID, userID, categoryID string) error {
	args := m.Called(ctx, listingID, userID, categoryID)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishListingDeleted(ctx context.Context, listingID string, valuesDeleted int64) error {
	args := m.Called(ctx, listingID, valuesDeleted)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishSellerRequestDecided(ctx context.Context, requestID, userID string, approved bool) error {
	args := m.Called(ctx, requestID, userID, approved)
	return args.Error(0)
}

type MockMailSender struct{ mock.Mock }

func (m *MockMailSender) SendSellerRequestDecision(toEmail, username string, approved bool) error {
	args := m.Called(toEmail, username, approved)
	return args.Error(0)
}
