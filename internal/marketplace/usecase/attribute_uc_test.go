package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/annonceo/marketplace-service/internal/marketplace/attrschema"
	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

func newAttributeUsecaseForTest(defRepo *MockAttributeDefinitionRepository, valueRepo *MockAttributeValueRepository, listingRepo *MockListingRepository) *AttributeUsecase {
	return NewAttributeUsecase(
		defRepo,
		valueRepo,
		listingRepo,
		new(MockCategoryRepository),
		nil,
		attrschema.NewFormatter(language.French),
		nil,
		logger.NewNop(),
	)
}

func realEstateListing() *domain.Listing {
	return &domain.Listing{
		ID:         "listing-1",
		UserID:     "owner-1",
		CategoryID: "immobilier",
		Title:      "Bel appartement",
		IsActive:   true,
	}
}

func surfaceDef() *domain.AttributeDefinition {
	return &domain.AttributeDefinition{
		ID:         "attr-surface",
		CategoryID: "immobilier",
		Name:       "Surface",
		ValueType:  domain.TypeNumber,
		Required:   true,
		IsActive:   true,
	}
}

func furnishedDef() *domain.AttributeDefinition {
	return &domain.AttributeDefinition{
		ID:         "attr-furnished",
		CategoryID: "immobilier",
		Name:       "Meublé",
		ValueType:  domain.TypeBoolean,
		IsActive:   true,
	}
}

func TestUpsertValues_StoresTypedValues(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	listingRepo.On("FindByID", mock.Anything, "listing-1").Return(realEstateListing(), nil)
	defRepo.On("FindByID", mock.Anything, "attr-surface").Return(surfaceDef(), nil)
	defRepo.On("FindByID", mock.Anything, "attr-furnished").Return(furnishedDef(), nil)

	var stored []*domain.AttributeValue
	valueRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.AttributeValue")).
		Run(func(args mock.Arguments) {
			stored = append(stored, args.Get(1).(*domain.AttributeValue))
		}).
		Return(nil)

	result, err := uc.UpsertValues(context.Background(), "listing-1", "owner-1", domain.RoleSeller, map[string]interface{}{
		"attr-surface":   "85",
		"attr-furnished": "true",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	assert.ElementsMatch(t, []string{"attr-surface", "attr-furnished"}, result.Saved)
	require.Len(t, stored, 2)

	byAttribute := map[string]domain.TypedValue{}
	for _, v := range stored {
		byAttribute[v.AttributeID] = v.Value
	}
	assert.Equal(t, domain.KindNumber, byAttribute["attr-surface"].Kind)
	assert.Equal(t, 85.0, byAttribute["attr-surface"].Num)
	assert.Equal(t, domain.KindBoolean, byAttribute["attr-furnished"].Kind)
	assert.True(t, byAttribute["attr-furnished"].Bool)
}

func TestUpsertValues_RejectedFieldDoesNotBlockSiblings(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	listingRepo.On("FindByID", mock.Anything, "listing-1").Return(realEstateListing(), nil)
	defRepo.On("FindByID", mock.Anything, "attr-surface").Return(surfaceDef(), nil)
	defRepo.On("FindByID", mock.Anything, "attr-furnished").Return(furnishedDef(), nil)
	valueRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(v *domain.AttributeValue) bool {
		return v.AttributeID == "attr-furnished"
	})).Return(nil)

	result, err := uc.UpsertValues(context.Background(), "listing-1", "owner-1", domain.RoleSeller, map[string]interface{}{
		"attr-surface":   "abc",
		"attr-furnished": "true",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"attr-furnished"}, result.Saved)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, attrschema.CodeNotANumber, result.Errors[0].Code)
	assert.Equal(t, "attr-surface", result.Errors[0].Field)
	valueRepo.AssertNumberOfCalls(t, "Upsert", 1)
}

func TestUpsertValues_OnlyInvalidFieldStoresNothing(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	listingRepo.On("FindByID", mock.Anything, "listing-1").Return(realEstateListing(), nil)
	defRepo.On("FindByID", mock.Anything, "attr-surface").Return(surfaceDef(), nil)

	result, err := uc.UpsertValues(context.Background(), "listing-1", "owner-1", domain.RoleSeller, map[string]interface{}{
		"attr-surface": "abc",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Saved)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, attrschema.CodeNotANumber, result.Errors[0].Code)
	valueRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpsertValues_UnknownAttributeReported(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	listingRepo.On("FindByID", mock.Anything, "listing-1").Return(realEstateListing(), nil)
	defRepo.On("FindByID", mock.Anything, "attr-ghost").Return(nil, domain.ErrAttributeNotFound)

	result, err := uc.UpsertValues(context.Background(), "listing-1", "owner-1", domain.RoleSeller, map[string]interface{}{
		"attr-ghost": "x",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Saved)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, attrschema.CodeUnknownAttribute, result.Errors[0].Code)
	assert.Equal(t, "attr-ghost", result.Errors[0].Field)
}

func TestUpsertValues_OtherCategoryAttributeRejected(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	carColor := &domain.AttributeDefinition{
		ID:         "attr-color",
		CategoryID: "vehicules",
		Name:       "Couleur",
		ValueType:  domain.TypeString,
		IsActive:   true,
	}
	listingRepo.On("FindByID", mock.Anything, "listing-1").Return(realEstateListing(), nil)
	defRepo.On("FindByID", mock.Anything, "attr-color").Return(carColor, nil)

	result, err := uc.UpsertValues(context.Background(), "listing-1", "owner-1", domain.RoleSeller, map[string]interface{}{
		"attr-color": "rouge",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Saved)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, attrschema.CodeUnknownAttribute, result.Errors[0].Code)
	assert.Equal(t, "attr-color", result.Errors[0].Field)
	valueRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUpsertValues_NonOwnerForbidden(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	listingRepo.On("FindByID", mock.Anything, "listing-1").Return(realEstateListing(), nil)

	_, err := uc.UpsertValues(context.Background(), "listing-1", "somebody-else", domain.RoleSeller, map[string]interface{}{
		"attr-surface": "85",
	})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpsertValues_AdminMayEditAnyListing(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	listingRepo.On("FindByID", mock.Anything, "listing-1").Return(realEstateListing(), nil)
	defRepo.On("FindByID", mock.Anything, "attr-surface").Return(surfaceDef(), nil)
	valueRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.UpsertValues(context.Background(), "listing-1", "admin-1", domain.RoleAdmin, map[string]interface{}{
		"attr-surface": "85",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"attr-surface"}, result.Saved)
}

func TestUpsertValues_OptionalEmptySkipped(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	listingRepo.On("FindByID", mock.Anything, "listing-1").Return(realEstateListing(), nil)
	defRepo.On("FindByID", mock.Anything, "attr-furnished").Return(furnishedDef(), nil)

	result, err := uc.UpsertValues(context.Background(), "listing-1", "owner-1", domain.RoleSeller, map[string]interface{}{
		"attr-furnished": "",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Saved)
	assert.Empty(t, result.Errors)
	valueRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestGetValuesForListing_KeyedByAttributeID(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	listingRepo.On("FindByID", mock.Anything, "listing-1").Return(realEstateListing(), nil)

	surface := domain.NumberValue(85)
	furnished := domain.BoolValue(true)
	valueRepo.On("FindByListingID", mock.Anything, "listing-1").Return([]*domain.AttributeValue{
		{ListingID: "listing-1", AttributeID: "attr-surface", Value: surface},
		{ListingID: "listing-1", AttributeID: "attr-furnished", Value: furnished},
	}, nil)

	values, err := uc.GetValuesForListing(context.Background(), "listing-1")

	require.NoError(t, err)
	require.Len(t, values, 2)
	require.NotNil(t, values["attr-surface"])
	assert.Equal(t, 85.0, values["attr-surface"].Num)
	require.NotNil(t, values["attr-furnished"])
	assert.True(t, values["attr-furnished"].Bool)
}

func TestGetValuesForListing_UnknownListing(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	listingRepo.On("FindByID", mock.Anything, "listing-ghost").Return(nil, domain.ErrListingNotFound)

	_, err := uc.GetValuesForListing(context.Background(), "listing-ghost")

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	valueRepo.AssertNotCalled(t, "FindByListingID", mock.Anything, mock.Anything)
}

func TestCreateDefinition_SelectNeedsOptions(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	uc := newAttributeUsecaseForTest(defRepo, new(MockAttributeValueRepository), new(MockListingRepository))

	err := uc.CreateDefinition(context.Background(), &domain.AttributeDefinition{
		CategoryID: "immobilier",
		Name:       "Type de bien",
		ValueType:  domain.TypeSelect,
		Options:    nil,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)
	defRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteDefinition_CascadesToValues(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, new(MockListingRepository))

	defRepo.On("FindByID", mock.Anything, "attr-surface").Return(surfaceDef(), nil)
	valueRepo.On("DeleteByAttributeID", mock.Anything, "attr-surface").Return(int64(12), nil)
	defRepo.On("Delete", mock.Anything, "attr-surface").Return(nil)

	err := uc.DeleteDefinition(context.Background(), "attr-surface")

	require.NoError(t, err)
	valueRepo.AssertCalled(t, "DeleteByAttributeID", mock.Anything, "attr-surface")
	defRepo.AssertCalled(t, "Delete", mock.Anything, "attr-surface")
}

func TestListingAttributes_FormatsStoredValues(t *testing.T) {
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	listingRepo := new(MockListingRepository)
	uc := newAttributeUsecaseForTest(defRepo, valueRepo, listingRepo)

	listingRepo.On("FindByID", mock.Anything, "listing-1").Return(realEstateListing(), nil)
	defRepo.On("FindByCategory", mock.Anything, "immobilier").
		Return([]*domain.AttributeDefinition{surfaceDef(), furnishedDef()}, nil)

	surface := domain.NumberValue(85)
	furnished := domain.BoolValue(true)
	valueRepo.On("FindByListingID", mock.Anything, "listing-1").Return([]*domain.AttributeValue{
		{ListingID: "listing-1", AttributeID: "attr-surface", Value: surface},
		{ListingID: "listing-1", AttributeID: "attr-furnished", Value: furnished},
	}, nil)

	views, err := uc.ListingAttributes(context.Background(), "listing-1")

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Surface", views[0].Name)
	assert.Equal(t, "85", views[0].Formatted)
	assert.Equal(t, "Meublé", views[1].Name)
	assert.Equal(t, "Oui", views[1].Formatted)
}
