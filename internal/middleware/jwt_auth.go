package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"hexshop_dev_v1_202509/internal/repository"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey string        // 簽名密鑰
	TokenTTL  time.Duration // Token 有效期
	Issuer    string        // 簽發者
}

// DefaultJWTConfig 預設配置
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey: "hexshop-secret-change-in-production",
		TokenTTL:  30 * 24 * time.Hour,
		Issuer:    "hexshop",
	}
}

// 全域配置
var jwtConfig = DefaultJWTConfig()

// SetJWTConfig 設定 JWT 配置
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// GetJWTConfig 取得 JWT 配置
func GetJWTConfig() *JWTConfig {
	return jwtConfig
}

// ==================== Claims 定義 ====================

// UserClaims 會員聲明，payload 只帶會員 ID
type UserClaims struct {
	UserID int64 `json:"id"`
	jwt.RegisteredClaims
}

// ==================== Token 產生與解析 ====================

// GenerateToken 簽發登入 Token
func GenerateToken(userID int64) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtConfig.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// ParseToken 解析 Token
func ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ==================== Gin 中介層 ====================

// Context Keys
const (
	ContextKeyUserID = "user_id"
)

// JWTAuth JWT 認證中介層
// 除了驗簽之外也回查會員是否仍存在，避免刪除後的帳號繼續下單
func JWTAuth(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "請先登入")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "無效的 token")
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			unauthorized(c, "無效的 token")
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "伺服器錯誤",
			})
			c.Abort()
			return
		}
		if user == nil {
			unauthorized(c, "無效的 token")
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  "failed",
		"message": message,
	})
	c.Abort()
}

// CurrentUserID 從 context 取出登入會員 ID
func CurrentUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
