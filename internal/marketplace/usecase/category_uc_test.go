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

func newCategoryUsecaseForTest() (*CategoryUsecase, *MockCategoryRepository, *MockSubCategoryRepository, *MockAttributeDefinitionRepository, *MockAttributeValueRepository) {
	categoryRepo := new(MockCategoryRepository)
	subRepo := new(MockSubCategoryRepository)
	defRepo := new(MockAttributeDefinitionRepository)
	valueRepo := new(MockAttributeValueRepository)
	uc := NewCategoryUsecase(categoryRepo, subRepo, defRepo, valueRepo, nil, logger.NewNop())
	return uc, categoryRepo, subRepo, defRepo, valueRepo
}

func TestDeleteCategory_CascadesDefinitionsAndSubCategories(t *testing.T) {
	uc, categoryRepo, subRepo, defRepo, valueRepo := newCategoryUsecaseForTest()

	categoryRepo.On("FindByID", mock.Anything, "immobilier").Return(&domain.Category{ID: "immobilier"}, nil)
	defRepo.On("FindAllByCategory", mock.Anything, "immobilier").Return([]*domain.AttributeDefinition{
		{ID: "attr-1", CategoryID: "immobilier", Name: "Surface"},
		{ID: "attr-2", CategoryID: "immobilier", Name: "Meublé", IsActive: false},
	}, nil)
	valueRepo.On("DeleteByAttributeID", mock.Anything, "attr-1").Return(int64(5), nil)
	valueRepo.On("DeleteByAttributeID", mock.Anything, "attr-2").Return(int64(0), nil)
	defRepo.On("Delete", mock.Anything, "attr-1").Return(nil)
	defRepo.On("Delete", mock.Anything, "attr-2").Return(nil)
	subRepo.On("DeleteByCategory", mock.Anything, "immobilier").Return(int64(3), nil)
	categoryRepo.On("Delete", mock.Anything, "immobilier").Return(nil)

	err := uc.DeleteCategory(context.Background(), "immobilier")

	require.NoError(t, err)
	// inactive definitions are swept too
	valueRepo.AssertCalled(t, "DeleteByAttributeID", mock.Anything, "attr-2")
	defRepo.AssertCalled(t, "Delete", mock.Anything, "attr-2")
	subRepo.AssertCalled(t, "DeleteByCategory", mock.Anything, "immobilier")
}

func TestCreateSubCategory_RequiresExistingParent(t *testing.T) {
	uc, categoryRepo, subRepo, _, _ := newCategoryUsecaseForTest()

	categoryRepo.On("FindByID", mock.Anything, "ghost").Return(nil, domain.ErrCategoryNotFound)

	err := uc.CreateSubCategory(context.Background(), &domain.SubCategory{CategoryID: "ghost", Name: "Motos"})

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCategory_RequiresName(t *testing.T) {
	uc, categoryRepo, _, _, _ := newCategoryUsecaseForTest()

	err := uc.CreateCategory(context.Background(), &domain.Category{Name: "   "})

	assert.ErrorIs(t, err, ErrInvalidInput)
	categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
