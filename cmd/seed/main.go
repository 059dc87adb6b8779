package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"hexshop_dev_v1_202509/internal/model"
	"hexshop_dev_v1_202509/pkg/config"
	"hexshop_dev_v1_202509/pkg/database"
)

// 建立開發用假資料：會員、分類、產品與標籤
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("讀取設定失敗: %v", err)
	}

	db := database.InitDB(cfg.DSN(),
		&model.User{},
		&model.ProductCategory{},
		&model.Product{},
		&model.ProductTag{},
		&model.ProductLinkTag{},
		&model.Order{},
		&model.OrderLinkProduct{},
	)

	// ===== 1. 建立使用者假資料 =====
	hashed, err := bcrypt.GenerateFromPassword([]byte("HexShop12345"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("密碼雜湊失敗: %v", err)
	}
	testUser := &model.User{
		Name:     "測試用戶",
		Email:    fmt.Sprintf("test-%d@example.com", time.Now().Unix()), // 避免重複
		Password: string(hashed),
		Role:     model.RoleUser,
	}
	if err := db.Create(testUser).Error; err != nil {
		log.Fatalf("建立使用者失敗: %v", err)
	}

	// ===== 2. 建立產品分類 =====
	testCategory := &model.ProductCategory{Name: "測試分類"}
	if err := db.Where("name = ?", testCategory.Name).FirstOrCreate(testCategory).Error; err != nil {
		log.Fatalf("建立分類失敗: %v", err)
	}

	// ===== 3. 建立產品 =====
	colors, _ := json.Marshal([]string{"黑色"})
	spec, _ := json.Marshal([]string{"單人"})
	testProduct := &model.Product{
		ID:                  uuid.NewString(),
		Name:                "測試產品",
		Description:         "這是測試用的產品",
		ImageURL:            "https://example.com/test.jpg",
		OriginPrice:         1000,
		Price:               900,
		Colors:              datatypes.JSON(colors),
		Spec:                datatypes.JSON(spec),
		Enable:              true,
		ProductCategoriesID: testCategory.ID,
	}
	if err := db.Create(testProduct).Error; err != nil {
		log.Fatalf("建立產品失敗: %v", err)
	}

	// ===== 4. 建立標籤並關聯 =====
	testTag := &model.ProductTag{Name: "熱銷"}
	if err := db.Where("name = ?", testTag.Name).FirstOrCreate(testTag).Error; err != nil {
		log.Fatalf("建立標籤失敗: %v", err)
	}
	link := &model.ProductLinkTag{
		ProductsID:    testProduct.ID,
		ProductTagsID: testTag.ID,
	}
	if err := db.Create(link).Error; err != nil {
		log.Fatalf("建立標籤關聯失敗: %v", err)
	}

	log.Println("假資料建立完成")
}
