package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hexshop_dev_v1_202509/internal/api/dto"
	"hexshop_dev_v1_202509/internal/middleware"
	"hexshop_dev_v1_202509/internal/service"
)

// ==================== OrderController 訂單控制器 ====================

// OrderController 訂單控制器
type OrderController struct {
	orderSvc *service.OrderService
	log      *zap.Logger
}

// NewOrderController 建立訂單控制器
func NewOrderController(orderSvc *service.OrderService, log *zap.Logger) *OrderController {
	return &OrderController{orderSvc: orderSvc, log: log}
}

// Create 成立訂單（需登入）
// @Summary 成立訂單
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body dto.PostOrderRequest true "訂單內容"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /orders [post]
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.PostOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("欄位未填寫正確", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "failed",
			"message": "欄位未填寫正確",
		})
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"status":  "failed",
			"message": "請先登入",
		})
		return
	}

	if _, err := c.orderSvc.PlaceOrder(ctx.Request.Context(), userID, &req); err != nil {
		if errors.Is(err, service.ErrOrderInsertFailed) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"status":  "failed",
				"message": err.Error(),
			})
			return
		}
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "加入成功",
	})
}
