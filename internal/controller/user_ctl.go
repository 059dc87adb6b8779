package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hexshop_dev_v1_202509/internal/api/dto"
	"hexshop_dev_v1_202509/internal/service"
)

// ==================== UserController 會員控制器 ====================

// UserController 會員控制器
type UserController struct {
	authSvc *service.AuthService
	log     *zap.Logger
}

// NewUserController 建立會員控制器
func NewUserController(authSvc *service.AuthService, log *zap.Logger) *UserController {
	return &UserController{authSvc: authSvc, log: log}
}

// Signup 註冊
// @Summary 註冊新會員
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "註冊資訊"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /users/signup [post]
func (c *UserController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("欄位未填寫正確", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "failed",
			"message": "欄位未填寫正確",
		})
		return
	}

	// 密碼規則有獨立訊息，binding 擋不到的在這裡擋
	if !dto.IsValidPassword(req.Password) {
		c.log.Warn("建立使用者錯誤: 密碼不符合規則")
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "failed",
			"message": "密碼不符合規則，需要包含英文數字大小寫，最短8個字，最長32個字",
		})
		return
	}

	user, err := c.authSvc.Signup(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, gin.H{
				"status":  "failed",
				"message": err.Error(),
			})
			return
		}
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "註冊成功",
		"data": gin.H{
			"user": user,
		},
	})
}

// Signin 登入
// @Summary 會員登入
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.SigninRequest true "登入資訊"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /users/signin [post]
func (c *UserController) Signin(ctx *gin.Context) {
	var req dto.SigninRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("欄位未填寫正確", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "failed",
			"message": "欄位未填寫正確",
		})
		return
	}

	if !dto.IsValidPassword(req.Password) {
		c.log.Warn("密碼不符合規則")
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "failed",
			"message": "密碼不符合規則，需要包含英文數字大小寫，最短8個字，最長32個字",
		})
		return
	}

	result, err := c.authSvc.Signin(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{
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
		"message": "登入成功",
		"token":   result.Token,
		"data": gin.H{
			"user": result.User,
		},
	})
}
