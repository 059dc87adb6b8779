package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductCategory 產品分類
type ProductCategory struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null"`

	Products []Product `gorm:"foreignKey:ProductCategoriesID"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

// Product 產品
// 主鍵為 UUID 字串，colors/spec 以 JSON 陣列存放（Postgres 為 jsonb）
type Product struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"size:255;column:image_url"`
	OriginPrice int    `gorm:"not null"`
	Price       int    `gorm:"not null"`

	// JSON 字串陣列，例如 ["黑色","白色"]
	Colors datatypes.JSON `gorm:"type:jsonb"`
	Spec   datatypes.JSON `gorm:"type:jsonb"`

	Enable bool `gorm:"default:true"`

	ProductCategoriesID int64            `gorm:"index;not null"`
	ProductCategories   *ProductCategory `gorm:"foreignKey:ProductCategoriesID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"` // 軟刪除，列表查詢自動排除
}

func (Product) TableName() string {
	return "products"
}

// BeforeCreate 未指定 ID 時自動產生 UUID
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductTag 產品標籤
type ProductTag struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	Name      string `gorm:"size:50;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductTag) TableName() string {
	return "product_tags"
}

func (t *ProductTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ProductLinkTag 產品與標籤的多對多關聯表
type ProductLinkTag struct {
	ID            int64  `gorm:"primary_key;AUTO_INCREMENT"`
	ProductsID    string `gorm:"type:varchar(36);index;not null"`
	ProductTagsID string `gorm:"type:varchar(36);index;not null"`

	ProductTags *ProductTag `gorm:"foreignKey:ProductTagsID"`

	CreatedAt time.Time
}

func (ProductLinkTag) TableName() string {
	return "product_link_tags"
}
