package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

type CategoryUsecase struct {
	categoryRepo domain.CategoryRepository
	subRepo      domain.SubCategoryRepository
	defRepo      domain.AttributeDefinitionRepository
	valueRepo    domain.AttributeValueRepository
	cache        DefinitionCache
	logger       *logger.Logger
}

func NewCategoryUsecase(
	categoryRepo domain.CategoryRepository,
	subRepo domain.SubCategoryRepository,
	defRepo domain.AttributeDefinitionRepository,
	valueRepo domain.AttributeValueRepository,
	cache DefinitionCache,
	log *logger.Logger,
) *CategoryUsecase {
	return &CategoryUsecase{
		categoryRepo: categoryRepo,
		subRepo:      subRepo,
		defRepo:      defRepo,
		valueRepo:    valueRepo,
		cache:        cache,
		logger:       log,
	}
}

func (uc *CategoryUsecase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return uc.categoryRepo.FindAll(ctx)
}

func (uc *CategoryUsecase) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return uc.categoryRepo.FindByID(ctx, id)
}

func (uc *CategoryUsecase) CreateCategory(ctx context.Context, category *domain.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	return uc.categoryRepo.Create(ctx, category)
}

func (uc *CategoryUsecase) UpdateCategory(ctx context.Context, category *domain.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	if _, err := uc.categoryRepo.FindByID(ctx, category.ID); err != nil {
		return err
	}
	return uc.categoryRepo.Update(ctx, category)
}

// DeleteCategory cascades to the category's sub-categories, attribute
// definitions and their stored values.
func (uc *CategoryUsecase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	defs, err := uc.defRepo.FindAllByCategory(ctx, id)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if _, err := uc.valueRepo.DeleteByAttributeID(ctx, def.ID); err != nil {
			return fmt.Errorf("failed to delete values of attribute %s: %w", def.ID, err)
		}
		if err := uc.defRepo.Delete(ctx, def.ID); err != nil {
			return fmt.Errorf("failed to delete attribute %s: %w", def.ID, err)
		}
	}

	subsDeleted, err := uc.subRepo.DeleteByCategory(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.DeleteDefinitions(ctx, id); err != nil {
			uc.logger.Warn("failed to invalidate definitions cache", zap.Error(err), zap.String("category_id", id))
		}
	}
	uc.logger.Info("category deleted",
		zap.String("category_id", id),
		zap.Int("definitions_deleted", len(defs)),
		zap.Int64("sub_categories_deleted", subsDeleted))
	return nil
}

func (uc *CategoryUsecase) ListSubCategories(ctx context.Context, categoryID string) ([]*domain.SubCategory, error) {
	if _, err := uc.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return uc.subRepo.FindByCategory(ctx, categoryID)
}

func (uc *CategoryUsecase) CreateSubCategory(ctx context.Context, sub *domain.SubCategory) error {
	if strings.TrimSpace(sub.Name) == "" {
		return fmt.Errorf("%w: sub-category name is required", ErrInvalidInput)
	}
	if _, err := uc.categoryRepo.FindByID(ctx, sub.CategoryID); err != nil {
		return err
	}
	return uc.subRepo.Create(ctx, sub)
}

func (uc *CategoryUsecase) DeleteSubCategory(ctx context.Context, id string) error {
	if _, err := uc.subRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.subRepo.Delete(ctx, id)
}
