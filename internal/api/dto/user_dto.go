package dto

import "time"

// ==================== 註冊 ====================

// SignupRequest 註冊請求
// 密碼規則有獨立的錯誤訊息，不放在 binding，由 IsValidPassword 另外檢查
type SignupRequest struct {
	Name     string `json:"name" binding:"required,account_name"`
	Email    string `json:"email" binding:"required,email_format"`
	Password string `json:"password" binding:"required"`
}

// UserInfo 會員公開資訊，絕不包含密碼
type UserInfo struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ==================== 登入 ====================

// SigninRequest 登入請求
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email_format"`
	Password string `json:"password" binding:"required"`
}

// SigninUser 登入回應中的會員欄位
type SigninUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SigninResult 登入成功的結果（token + 會員資訊）
type SigninResult struct {
	Token string
	User  SigninUser
}
