package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"hexshop_dev_v1_202509/internal/controller"
	"hexshop_dev_v1_202509/internal/middleware"
	"hexshop_dev_v1_202509/internal/repository"

	_ "hexshop_dev_v1_202509/docs"
)

// Controllers 路由需要的控制器集合
type Controllers struct {
	User     *controller.UserController
	Category *controller.CategoryController
	Product  *controller.ProductController
	Order    *controller.OrderController
}

// SetupRouter 建立 gin engine 並註冊所有路由
func SetupRouter(ctls *Controllers, userRepo repository.UserRepository, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.ErrorHandler(log))
	r.Use(cors.Default())

	// Swagger 文件路由
	// 訪問 http://localhost:5500/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 靜態資源
	r.Static("/public", "./public")

	// 健康檢查
	r.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// API 路由組
	api := r.Group("/api/v1")
	{
		// users 會員
		users := api.Group("/users")
		{
			users.POST("/signup", ctls.User.Signup)
			users.POST("/signin", ctls.User.Signin)
		}

		// category 分類
		api.GET("/category", ctls.Category.List)

		// products 產品
		products := api.Group("/products")
		{
			products.GET("", ctls.Product.List)
			products.GET("/:products_id", ctls.Product.Detail)
		}

		// orders 訂單，需登入
		orders := api.Group("/orders")
		orders.Use(middleware.JWTAuth(userRepo))
		{
			orders.POST("", ctls.Order.Create)
		}
	}

	return r
}
