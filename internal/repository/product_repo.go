package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hexshop_dev_v1_202509/internal/model"
)

// ==================== 過濾條件 ====================

// ProductFilter 產品列表過濾條件
type ProductFilter struct {
	CategoryID int64 // 0 表示不過濾分類
	Page       int
	PageSize   int
}

// ==================== ProductRepository 產品倉庫 ====================

// ProductRepository 產品倉庫介面
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
	GetTags(ctx context.Context, productID string) ([]model.ProductTag, error)
	LinkTag(ctx context.Context, productID, tagID string) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 建立產品倉庫
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("ProductCategories").
		Where("id = ?", id).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List 只回傳未下架、未軟刪除的產品，依建立時間新到舊排序
func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&model.Product{}).Where("enable = ?", true)
	if filter.CategoryID > 0 {
		query = query.Where("product_categories_id = ?", filter.CategoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Preload("ProductCategories").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetTags 透過關聯表撈出產品的所有標籤
func (r *productRepository) GetTags(ctx context.Context, productID string) ([]model.ProductTag, error) {
	var links []model.ProductLinkTag
	err := r.db.WithContext(ctx).
		Preload("ProductTags").
		Where("products_id = ?", productID).
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	tags := make([]model.ProductTag, 0, len(links))
	for _, link := range links {
		if link.ProductTags != nil {
			tags = append(tags, *link.ProductTags)
		}
	}
	return tags, nil
}

func (r *productRepository) LinkTag(ctx context.Context, productID, tagID string) error {
	return r.db.WithContext(ctx).Create(&model.ProductLinkTag{
		ProductsID:    productID,
		ProductTagsID: tagID,
	}).Error
}
