package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hexshop_dev_v1_202509/internal/service"
)

// ==================== CategoryController 分類控制器 ====================

// CategoryController 分類控制器
type CategoryController struct {
	catalogSvc *service.CatalogService
	log        *zap.Logger
}

// NewCategoryController 建立分類控制器
func NewCategoryController(catalogSvc *service.CatalogService, log *zap.Logger) *CategoryController {
	return &CategoryController{catalogSvc: catalogSvc, log: log}
}

// List 分類列表
// @Summary 分類列表
// @Tags Category
// @Produce json
// @Param page query int false "頁碼，預設 1"
// @Param category query string false "分類名稱"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /category [get]
func (c *CategoryController) List(ctx *gin.Context) {
	page, ok := parsePage(ctx.Query("page"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "failed",
			"message": "請輸入有效的頁數",
		})
		return
	}
	categoryName := ctx.Query("category")
	c.log.Debug("查詢分類", zap.Int("page", page), zap.String("category", categoryName))

	result, err := c.catalogSvc.ListCategories(ctx.Request.Context(), page, categoryName)
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
		"status":     "success",
		"message":    "成功",
		"data":       result.Categories,
		"pagination": result.Pagination,
	})
}
