package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hexshop_dev_v1_202509/internal/api/dto"
	"hexshop_dev_v1_202509/internal/service"
)

// ==================== ProductController 產品控制器 ====================

// ProductController 產品控制器
type ProductController struct {
	catalogSvc *service.CatalogService
	log        *zap.Logger
}

// NewProductController 建立產品控制器
func NewProductController(catalogSvc *service.CatalogService, log *zap.Logger) *ProductController {
	return &ProductController{catalogSvc: catalogSvc, log: log}
}

// List 產品列表
// @Summary 產品列表
// @Tags Products
// @Produce json
// @Param page query int false "頁碼，預設 1"
// @Param category query string false "分類名稱"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	page, ok := parsePage(ctx.Query("page"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "failed",
			"message": "請輸入有效的頁數",
		})
		return
	}
	categoryName := ctx.Query("category")
	c.log.Debug("查詢產品", zap.Int("page", page), zap.String("category", categoryName))

	result, err := c.catalogSvc.ListProducts(ctx.Request.Context(), page, categoryName)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
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
		"message": "成功",
		"data":    result,
	})
}

// Detail 產品詳情
// @Summary 產品詳情
// @Tags Products
// @Produce json
// @Param products_id path string true "產品 ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /products/{products_id} [get]
func (c *ProductController) Detail(ctx *gin.Context) {
	productID := ctx.Param("products_id")
	if !dto.IsValidUUID(productID) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "failed",
			"message": "欄位未填寫正確",
		})
		return
	}

	detail, err := c.catalogSvc.GetProductDetail(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
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
		"message": "成功",
		"data":    detail,
	})
}
