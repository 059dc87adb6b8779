package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hexshop_dev_v1_202509/internal/model"
)

func getPath(env *testEnv, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func seedProducts(t *testing.T, env *testEnv) *model.Product {
	category := &model.ProductCategory{Name: "測試分類"}
	if err := env.db.Create(category).Error; err != nil {
		t.Fatalf("建立分類失敗: %v", err)
	}
	product := &model.Product{
		Name:                "測試產品",
		Description:         "這是測試用的產品",
		ImageURL:            "https://example.com/test.jpg",
		OriginPrice:         1000,
		Price:               900,
		Colors:              []byte(`["黑色"]`),
		Spec:                []byte(`["單人"]`),
		Enable:              true,
		ProductCategoriesID: category.ID,
	}
	if err := env.db.Create(product).Error; err != nil {
		t.Fatalf("建立產品失敗: %v", err)
	}
	return product
}

func TestProductList(t *testing.T) {
	env := setupTestEnv(t)
	seedProducts(t, env)

	w := getPath(env, "/api/v1/products?page=1")
	if w.Code != http.StatusOK {
		t.Fatalf("狀態碼 = %d, 預期 200, body = %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["message"] != "成功" {
		t.Errorf("message = %v", body["message"])
	}

	data := body["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	if len(products) != 1 {
		t.Fatalf("產品筆數 = %d, 預期 1", len(products))
	}
	item := products[0].(map[string]interface{})
	if item["category"] != "測試分類" {
		t.Errorf("category = %v, 預期 測試分類", item["category"])
	}

	pagination := data["pagination"].(map[string]interface{})
	if pagination["current_page"] != float64(1) {
		t.Errorf("current_page = %v, 預期 1", pagination["current_page"])
	}
	if pagination["total_page"] != float64(1) {
		t.Errorf("total_page = %v, 預期 1", pagination["total_page"])
	}
}

// 非正整數的頁碼一律 400
func TestProductList_InvalidPage(t *testing.T) {
	env := setupTestEnv(t)
	seedProducts(t, env)

	for _, page := range []string{"0", "-1", "abc", "1.5", "1e3"} {
		w := getPath(env, "/api/v1/products?page="+page)
		if w.Code != http.StatusBadRequest {
			t.Errorf("page=%q 狀態碼 = %d, 預期 400", page, w.Code)
			continue
		}
		resp := decodeBody(t, w)
		if resp["message"] != "請輸入有效的頁數" {
			t.Errorf("page=%q message = %v", page, resp["message"])
		}
	}
}

func TestProductList_UnknownCategory(t *testing.T) {
	env := setupTestEnv(t)
	seedProducts(t, env)

	w := getPath(env, "/api/v1/products?page=1&category=Nonexistent")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("狀態碼 = %d, 預期 400", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["status"] != "failed" || resp["message"] != "找不到該分類" {
		t.Errorf("回應 = %v", resp)
	}
}

func TestProductDetail(t *testing.T) {
	env := setupTestEnv(t)
	product := seedProducts(t, env)

	w := getPath(env, "/api/v1/products/"+product.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("狀態碼 = %d, 預期 200, body = %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	if data["category"] != "測試分類" {
		t.Errorf("category = %v", data["category"])
	}

	colors := data["colors"].([]interface{})
	if len(colors) != 1 || colors[0] != "黑色" {
		t.Errorf("colors = %v, 預期 [黑色]", colors)
	}
	spec := data["spec"].([]interface{})
	if len(spec) != 1 || spec[0] != "單人" {
		t.Errorf("spec = %v, 預期 [單人]", spec)
	}
	if _, ok := data["tags"].([]interface{}); !ok {
		t.Error("tags 應為陣列")
	}
}

func TestProductDetail_InvalidID(t *testing.T) {
	env := setupTestEnv(t)

	w := getPath(env, "/api/v1/products/not-a-uuid")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("狀態碼 = %d, 預期 400", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["message"] != "欄位未填寫正確" {
		t.Errorf("message = %v", resp["message"])
	}
}

func TestProductDetail_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := getPath(env, "/api/v1/products/00000000-0000-4000-8000-000000000000")
	if w.Code != http.StatusNotFound {
		t.Fatalf("狀態碼 = %d, 預期 404", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["message"] != "商品ID不存在" {
		t.Errorf("message = %v", resp["message"])
	}
}

func TestCategoryList(t *testing.T) {
	env := setupTestEnv(t)
	seedProducts(t, env)

	w := getPath(env, "/api/v1/category")
	if w.Code != http.StatusOK {
		t.Fatalf("狀態碼 = %d, 預期 200", w.Code)
	}
	body := decodeBody(t, w)
	data := body["data"].([]interface{})
	if len(data) != 1 {
		t.Fatalf("分類筆數 = %d, 預期 1", len(data))
	}
	if _, ok := body["pagination"].(map[string]interface{}); !ok {
		t.Error("回應應包含 pagination")
	}
}

func TestCategoryList_InvalidPage(t *testing.T) {
	env := setupTestEnv(t)

	w := getPath(env, "/api/v1/category?page=zero")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("狀態碼 = %d, 預期 400", w.Code)
	}
}

func TestCategoryList_UnknownCategory(t *testing.T) {
	env := setupTestEnv(t)
	seedProducts(t, env)

	w := getPath(env, "/api/v1/category?category=不存在的分類")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("狀態碼 = %d, 預期 400", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["message"] != "找不到該分類" {
		t.Errorf("message = %v", resp["message"])
	}
}
