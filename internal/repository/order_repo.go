package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hexshop_dev_v1_202509/internal/model"
)

// ==================== OrderRepository 訂單倉庫 ====================

// ErrLineItemCountMismatch 明細寫入筆數與提交筆數不一致
var ErrLineItemCountMismatch = errors.New("訂單明細寫入筆數不一致")

// OrderRepository 訂單倉庫介面
type OrderRepository interface {
	// CreateWithItems 在同一個交易內寫入訂單主表與全部明細，
	// 任一步失敗即整筆回滾，不會留下沒有明細的訂單
	CreateWithItems(ctx context.Context, order *model.Order, items []model.OrderLinkProduct) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByIDWithItems(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 建立訂單倉庫
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithItems(ctx context.Context, order *model.Order, items []model.OrderLinkProduct) error {
	if len(items) == 0 {
		return ErrLineItemCountMismatch
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("寫入訂單主表失敗: %w", err)
		}
		if order.ID == 0 {
			return errors.New("訂單主表未產生 ID")
		}

		for i := range items {
			items[i].OrdersID = order.ID
		}

		result := tx.Create(&items)
		if result.Error != nil {
			return fmt.Errorf("寫入訂單明細失敗: %w", result.Error)
		}
		if result.RowsAffected != int64(len(items)) {
			return ErrLineItemCountMismatch
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByIDWithItems(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("users_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
