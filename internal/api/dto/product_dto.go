package dto

import "time"

// ==================== 分類 ====================

// CategoryItem 分類列表項目
type CategoryItem struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResult 分類列表查詢結果
type CategoryListResult struct {
	Categories []CategoryItem
	Pagination Pagination
}

// ==================== 產品列表 ====================

// ProductListItem 產品列表項目，分類已拉平成名稱
type ProductListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	OriginPrice int    `json:"origin_price"`
	Price       int    `json:"price"`
}

// ProductListResult 產品列表查詢結果
type ProductListResult struct {
	Products   []ProductListItem `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// ==================== 產品詳情 ====================

// TagItem 產品標籤
type TagItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductDetail 產品詳情，colors/spec 已解析為字串陣列
type ProductDetail struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       int       `json:"price"`
	OriginPrice int       `json:"origin_price"`
	Tags        []TagItem `json:"tags"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Colors      []string  `json:"colors"`
	Spec        []string  `json:"spec"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
