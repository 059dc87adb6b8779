package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hexshop_dev_v1_202509/internal/model"
)

// ==================== CategoryRepository 分類倉庫 ====================

// CategoryRepository 分類倉庫介面
type CategoryRepository interface {
	Create(ctx context.Context, category *model.ProductCategory) error
	GetByName(ctx context.Context, name string) (*model.ProductCategory, error)
	List(ctx context.Context, page, pageSize int) ([]model.ProductCategory, int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 建立分類倉庫
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.ProductCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*model.ProductCategory, error) {
	var category model.ProductCategory
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, page, pageSize int) ([]model.ProductCategory, int64, error) {
	var categories []model.ProductCategory
	var total int64

	query := r.db.WithContext(ctx).Model(&model.ProductCategory{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}
