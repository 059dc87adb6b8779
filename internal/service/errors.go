package service

import "errors"

// 服務層共用錯誤，controller 用 errors.Is 對應到 HTTP 狀態碼
var (
	// ErrEmailTaken Email 已被註冊
	ErrEmailTaken = errors.New("註冊失敗，Email 已被使用")
	// ErrInvalidCredentials 帳號不存在或密碼錯誤，刻意不區分
	ErrInvalidCredentials = errors.New("使用者不存在或密碼輸入錯誤")
	// ErrCategoryNotFound 查無此分類
	ErrCategoryNotFound = errors.New("找不到該分類")
	// ErrProductNotFound 查無此商品
	ErrProductNotFound = errors.New("商品ID不存在")
	// ErrOrderInsertFailed 訂單寫入失敗
	ErrOrderInsertFailed = errors.New("加入失敗")
)
