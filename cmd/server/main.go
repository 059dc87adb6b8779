package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hexshop_dev_v1_202509/internal/api/dto"
	"hexshop_dev_v1_202509/internal/controller"
	"hexshop_dev_v1_202509/internal/middleware"
	"hexshop_dev_v1_202509/internal/model"
	"hexshop_dev_v1_202509/internal/repository"
	"hexshop_dev_v1_202509/internal/router"
	"hexshop_dev_v1_202509/internal/service"
	"hexshop_dev_v1_202509/pkg/config"
	"hexshop_dev_v1_202509/pkg/database"
	"hexshop_dev_v1_202509/pkg/logger"
)

func main() {
	// 1. 讀取設定
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("讀取設定失敗: %v", err)
	}

	// 2. 初始化 logger
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("初始化 logger 失敗: %v", err)
	}
	defer logger.Sync()

	// 3. 初始化資料庫
	db := initDatabase(cfg)

	// 4. JWT 設定
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey: cfg.JWTSecret,
		TokenTTL:  time.Duration(cfg.JWTExpiresDay) * 24 * time.Hour,
		Issuer:    "hexshop",
	})

	// 5. 自訂驗證規則
	dto.RegisterValidators()

	// 6. 組裝依賴與路由
	deps := initDependencies(db)
	r := router.SetupRouter(deps.Controllers, deps.Repos.User, logger.Named("Router"))

	// 7. 啟動服務
	startServer(r, cfg.ServerPort)
}

// ==================== 依賴容器 ====================

// Dependencies 依賴容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 倉庫集合
type Repositories struct {
	User     repository.UserRepository
	Category repository.CategoryRepository
	Product  repository.ProductRepository
	Order    repository.OrderRepository
}

// Services 服務集合
type Services struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Order   *service.OrderService
}

func initDatabase(cfg *config.Config) *gorm.DB {
	return database.InitDB(cfg.DSN(),
		&model.User{},
		&model.ProductCategory{},
		&model.Product{},
		&model.ProductTag{},
		&model.ProductLinkTag{},
		&model.Order{},
		&model.OrderLinkProduct{},
	)
}

func initDependencies(db *gorm.DB) *Dependencies {
	repos := &Repositories{
		User:     repository.NewUserRepository(db),
		Category: repository.NewCategoryRepository(db),
		Product:  repository.NewProductRepository(db),
		Order:    repository.NewOrderRepository(db),
	}

	services := &Services{
		Auth:    service.NewAuthService(repos.User, logger.Named("AuthService")),
		Catalog: service.NewCatalogService(repos.Category, repos.Product, logger.Named("CatalogService")),
		Order:   service.NewOrderService(repos.Order, logger.Named("OrderService")),
	}

	controllers := &router.Controllers{
		User:     controller.NewUserController(services.Auth, logger.Named("UsersController")),
		Category: controller.NewCategoryController(services.Catalog, logger.Named("CategoryController")),
		Product:  controller.NewProductController(services.Catalog, logger.Named("ProductsController")),
		Order:    controller.NewOrderController(services.Order, logger.Named("OrdersController")),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// ==================== 服務啟動 ====================

// startServer 啟動服務並處理優雅關閉
func startServer(r *gin.Engine, port string) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 非同步啟動服務
	go func() {
		log.Printf("服務啟動在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服務啟動失敗: %v", err)
		}
	}()

	// 等待退出訊號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在關閉服務...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服務強制關閉: %v", err)
	}

	log.Println("服務已退出")
}
