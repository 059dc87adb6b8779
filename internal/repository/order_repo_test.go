package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hexshop_dev_v1_202509/internal/model"
)

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("連接測試資料庫失敗: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Order{}, &model.OrderLinkProduct{})
	if err != nil {
		t.Fatalf("資料庫遷移失敗: %v", err)
	}
	return db
}

func newTestOrder() *model.Order {
	return &model.Order{
		UsersID:          1,
		Name:             "測試收件人",
		Tel:              "0912345678",
		Address:          "台北市信義區測試路一段1號",
		PaymentMethodsID: model.PaymentMethodCreditCard,
	}
}

func TestOrderRepo_CreateWithItems(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := newTestOrder()
	items := []model.OrderLinkProduct{
		{ProductsID: "p-1", Quantity: 2, Spec: "單人", Colors: "黑色"},
		{ProductsID: "p-2", Quantity: 1, Spec: "雙人", Colors: "白色"},
	}

	if err := repo.CreateWithItems(ctx, order, items); err != nil {
		t.Fatalf("CreateWithItems() error = %v", err)
	}
	if order.ID == 0 {
		t.Fatal("訂單 ID 應該被自動分配")
	}
	if order.IsPaid {
		t.Error("新訂單應為未付款")
	}

	got, err := repo.GetByIDWithItems(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetByIDWithItems() error = %v", err)
	}
	if got == nil {
		t.Fatal("查不到剛建立的訂單")
	}
	if len(got.Items) != 2 {
		t.Errorf("明細筆數 = %d, 預期 2", len(got.Items))
	}
	for _, item := range got.Items {
		if item.OrdersID != order.ID {
			t.Errorf("明細的訂單 ID = %d, 預期 %d", item.OrdersID, order.ID)
		}
	}
}

func TestOrderRepo_CreateWithItems_EmptyItems(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepository(db)

	err := repo.CreateWithItems(context.Background(), newTestOrder(), nil)
	if err == nil {
		t.Fatal("沒有明細應該要失敗")
	}

	var count int64
	db.Model(&model.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("訂單主表筆數 = %d, 不應留下任何訂單", count)
	}
}

// 明細寫入失敗時，同一請求建立的訂單主表必須一併回滾，
// 不能留下沒有明細的孤兒訂單
func TestOrderRepo_CreateWithItems_RollbackOnItemFailure(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := newTestOrder()
	// 兩筆明細指定相同主鍵，第二筆違反唯一性，整批寫入失敗
	items := []model.OrderLinkProduct{
		{ID: 1, ProductsID: "p-1", Quantity: 1, Spec: "單人", Colors: "黑色"},
		{ID: 1, ProductsID: "p-2", Quantity: 1, Spec: "雙人", Colors: "白色"},
	}

	err := repo.CreateWithItems(ctx, order, items)
	if err == nil {
		t.Fatal("明細寫入失敗應該回傳錯誤")
	}

	// 回滾後訂單主表不可查得
	var orderCount int64
	db.Model(&model.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Errorf("訂單主表筆數 = %d, 回滾後應為 0", orderCount)
	}

	var itemCount int64
	db.Model(&model.OrderLinkProduct{}).Count(&itemCount)
	if itemCount != 0 {
		t.Errorf("訂單明細筆數 = %d, 回滾後應為 0", itemCount)
	}
}

func TestOrderRepo_ListByUser(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		order := newTestOrder()
		items := []model.OrderLinkProduct{
			{ProductsID: "p-1", Quantity: 1, Spec: "單人", Colors: "黑色"},
		}
		if err := repo.CreateWithItems(ctx, order, items); err != nil {
			t.Fatalf("CreateWithItems() error = %v", err)
		}
	}

	orders, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(orders) != 3 {
		t.Errorf("訂單筆數 = %d, 預期 3", len(orders))
	}

	orders, err = repo.ListByUser(ctx, 99)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("其他會員的訂單筆數 = %d, 預期 0", len(orders))
	}
}
