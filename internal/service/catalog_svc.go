package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"hexshop_dev_v1_202509/internal/api/dto"
	"hexshop_dev_v1_202509/internal/repository"
)

// 每頁固定筆數
const perPage = 10

// ==================== CatalogService 型錄查詢服務 ====================

// CatalogService 分類與產品的唯讀查詢
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	log          *zap.Logger
}

// NewCatalogService 建立型錄服務
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, log *zap.Logger) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		log:          log,
	}
}

// ListCategories 分類列表
// 有指定分類名稱時只回該分類，查無回 ErrCategoryNotFound
func (s *CatalogService) ListCategories(ctx context.Context, page int, categoryName string) (*dto.CategoryListResult, error) {
	if categoryName != "" {
		category, err := s.categoryRepo.GetByName(ctx, categoryName)
		if err != nil {
			return nil, fmt.Errorf("查詢分類失敗: %w", err)
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		return &dto.CategoryListResult{
			Categories: []dto.CategoryItem{{
				ID:        category.ID,
				Name:      category.Name,
				CreatedAt: category.CreatedAt,
			}},
			Pagination: dto.NewPagination(1, page, perPage),
		}, nil
	}

	categories, total, err := s.categoryRepo.List(ctx, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("查詢分類列表失敗: %w", err)
	}

	items := make([]dto.CategoryItem, len(categories))
	for i, c := range categories {
		items[i] = dto.CategoryItem{
			ID:        c.ID,
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
		}
	}
	return &dto.CategoryListResult{
		Categories: items,
		Pagination: dto.NewPagination(total, page, perPage),
	}, nil
}

// ListProducts 產品列表
// 軟刪除與下架的產品不會出現；分類名稱查無回 ErrCategoryNotFound
func (s *CatalogService) ListProducts(ctx context.Context, page int, categoryName string) (*dto.ProductListResult, error) {
	filter := repository.ProductFilter{
		Page:     page,
		PageSize: perPage,
	}

	if categoryName != "" {
		category, err := s.categoryRepo.GetByName(ctx, categoryName)
		if err != nil {
			return nil, fmt.Errorf("查詢分類失敗: %w", err)
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		filter.CategoryID = category.ID
	}

	products, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查詢產品列表失敗: %w", err)
	}

	items := make([]dto.ProductListItem, len(products))
	for i, p := range products {
		item := dto.ProductListItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			OriginPrice: p.OriginPrice,
			Price:       p.Price,
		}
		// 把分類物件拉平，只取分類名稱
		if p.ProductCategories != nil {
			item.Category = p.ProductCategories.Name
		}
		items[i] = item
	}

	return &dto.ProductListResult{
		Products:   items,
		Pagination: dto.NewPagination(total, page, perPage),
	}, nil
}

// GetProductDetail 產品詳情
// 分類拉平成名稱、附上標籤，colors/spec 解析為字串陣列
func (s *CatalogService) GetProductDetail(ctx context.Context, productID string) (*dto.ProductDetail, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("查詢產品失敗: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	tags, err := s.productRepo.GetTags(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("查詢產品標籤失敗: %w", err)
	}

	tagItems := make([]dto.TagItem, len(tags))
	for i, t := range tags {
		tagItems[i] = dto.TagItem{ID: t.ID, Name: t.Name}
	}

	detail := &dto.ProductDetail{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		OriginPrice: product.OriginPrice,
		Tags:        tagItems,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		Colors:      decodeStringArray(product.Colors, s.log, "colors"),
		Spec:        decodeStringArray(product.Spec, s.log, "spec"),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.ProductCategories != nil {
		detail.Category = product.ProductCategories.Name
	}
	return detail, nil
}

// decodeStringArray jsonb 欄位解析為字串陣列，解不開時回空陣列並記 log
func decodeStringArray(raw []byte, log *zap.Logger, field string) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		log.Warn("欄位格式不是字串陣列", zap.String("field", field), zap.Error(err))
		return []string{}
	}
	return values
}
