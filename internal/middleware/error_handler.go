package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HTTPError 帶狀態碼的錯誤，集中錯誤處理會依狀態碼回應
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError 建立帶狀態碼的錯誤
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// ErrorHandler 集中錯誤處理
// handler 透過 ctx.Error(err) 丟出的錯誤統一在這裡回應：
// 帶狀態碼的用該狀態碼，其餘一律 500，細節只進 log 不外洩
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log.Error("請求處理失敗",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)

		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			c.JSON(httpErr.Status, gin.H{
				"message": httpErr.Message,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "伺服器錯誤",
		})
	}
}

// Recovery panic 統一回 500，與集中錯誤處理相同的回應格式
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "伺服器錯誤",
		})
	})
}
