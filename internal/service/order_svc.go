package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"hexshop_dev_v1_202509/internal/api/dto"
	"hexshop_dev_v1_202509/internal/model"
	"hexshop_dev_v1_202509/internal/repository"
)

// ==================== OrderService 訂單服務 ====================

// OrderService 訂單服務
type OrderService struct {
	orderRepo repository.OrderRepository
	log       *zap.Logger
}

// NewOrderService 建立訂單服務
func NewOrderService(orderRepo repository.OrderRepository, log *zap.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, log: log}
}

// PlaceOrder 成立訂單
// 主表與明細在同一交易內寫入，任何一步失敗整筆回滾；
// 成功時回傳新訂單 ID
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64, req *dto.PostOrderRequest) (int64, error) {
	order := &model.Order{
		UsersID:          userID,
		Name:             strings.TrimSpace(req.User.Name),
		Tel:              req.User.Tel,
		Address:          strings.TrimSpace(req.User.Address),
		IsPaid:           false, // 預設「未付款」
		PaymentMethodsID: req.PaymentMethods,
	}

	items := make([]model.OrderLinkProduct, len(req.Orders))
	for i, line := range req.Orders {
		items[i] = model.OrderLinkProduct{
			ProductsID: line.ProductID,
			Quantity:   *line.Quantity,
			Spec:       line.Spec,
			Colors:     line.Colors,
		}
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		s.log.Warn("加入失敗", zap.Int64("user_id", userID), zap.Error(err))
		return 0, ErrOrderInsertFailed
	}

	s.log.Info("訂單成立", zap.Int64("order_id", order.ID), zap.Int64("user_id", userID), zap.Int("items", len(items)))
	return order.ID, nil
}
