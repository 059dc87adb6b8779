package controller

import (
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hexshop_dev_v1_202509/internal/api/dto"
	"hexshop_dev_v1_202509/internal/middleware"
	"hexshop_dev_v1_202509/internal/model"
	"hexshop_dev_v1_202509/internal/repository"
	"hexshop_dev_v1_202509/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
}

// ==================== 測試輔助 ====================

type testEnv struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	router   *gin.Engine
}

// setupTestEnv 建立 in-memory 資料庫與完整路由
func setupTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("連接測試資料庫失敗: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.ProductCategory{},
		&model.Product{},
		&model.ProductTag{},
		&model.ProductLinkTag{},
		&model.Order{},
		&model.OrderLinkProduct{},
	)
	if err != nil {
		t.Fatalf("資料庫遷移失敗: %v", err)
	}

	log := zap.NewNop()
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	authSvc := service.NewAuthService(userRepo, log)
	catalogSvc := service.NewCatalogService(categoryRepo, productRepo, log)
	orderSvc := service.NewOrderService(orderRepo, log)

	userCtl := NewUserController(authSvc, log)
	categoryCtl := NewCategoryController(catalogSvc, log)
	productCtl := NewProductController(catalogSvc, log)
	orderCtl := NewOrderController(orderSvc, log)

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.ErrorHandler(log))

	api := r.Group("/api/v1")
	{
		api.POST("/users/signup", userCtl.Signup)
		api.POST("/users/signin", userCtl.Signin)
		api.GET("/category", categoryCtl.List)
		api.GET("/products", productCtl.List)
		api.GET("/products/:products_id", productCtl.Detail)

		orders := api.Group("/orders")
		orders.Use(middleware.JWTAuth(userRepo))
		orders.POST("", orderCtl.Create)
	}

	return &testEnv{db: db, userRepo: userRepo, router: r}
}
