package main

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// 全鏈路冒煙測試：對運行中的服務走一遍 註冊 → 登入 → 瀏覽 → 下單
// 用法: go run ./cmd/smoke （服務需先啟動，BASE_URL 預設 http://localhost:5500）
func main() {
	base := "http://localhost:5500"

	client := resty.New()
	client.SetBaseURL(base)
	client.SetTimeout(10 * time.Second)
	client.SetHeader("Content-Type", "application/json")

	fmt.Println(">>> 開始執行全鏈路冒煙測試...")

	// 1. 健康檢查
	resp, err := client.R().Get("/healthcheck")
	if err != nil {
		log.Fatalf("健康檢查請求失敗: %v", err)
	}
	if resp.StatusCode() != 200 {
		log.Fatalf("健康檢查失敗，狀態碼 %d", resp.StatusCode())
	}
	fmt.Println("健康檢查 OK")

	// 2. 註冊
	email := fmt.Sprintf("smoke-%d@example.com", time.Now().UnixNano())
	signupBody := map[string]string{
		"name":     "冒煙測試",
		"email":    email,
		"password": "SmokeTest123",
	}
	resp, err = client.R().SetBody(signupBody).Post("/api/v1/users/signup")
	if err != nil {
		log.Fatalf("註冊請求失敗: %v", err)
	}
	if resp.StatusCode() != 201 {
		log.Fatalf("註冊失敗，狀態碼 %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Println("註冊 OK")

	// 3. 登入
	var signinResp struct {
		Token string `json:"token"`
	}
	resp, err = client.R().
		SetBody(map[string]string{"email": email, "password": "SmokeTest123"}).
		SetResult(&signinResp).
		Post("/api/v1/users/signin")
	if err != nil {
		log.Fatalf("登入請求失敗: %v", err)
	}
	if resp.StatusCode() != 200 || signinResp.Token == "" {
		log.Fatalf("登入失敗，狀態碼 %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Println("登入 OK")

	// 4. 產品列表
	var listResp struct {
		Data struct {
			Products []struct {
				ID string `json:"id"`
			} `json:"products"`
		} `json:"data"`
	}
	resp, err = client.R().
		SetQueryParam("page", "1").
		SetResult(&listResp).
		Get("/api/v1/products")
	if err != nil {
		log.Fatalf("產品列表請求失敗: %v", err)
	}
	if resp.StatusCode() != 200 {
		log.Fatalf("產品列表失敗，狀態碼 %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Printf("產品列表 OK，共 %d 筆\n", len(listResp.Data.Products))

	if len(listResp.Data.Products) == 0 {
		fmt.Println("沒有產品可下單（請先跑 cmd/seed），冒煙測試到此結束")
		return
	}

	// 5. 產品詳情
	productID := listResp.Data.Products[0].ID
	resp, err = client.R().Get("/api/v1/products/" + productID)
	if err != nil {
		log.Fatalf("產品詳情請求失敗: %v", err)
	}
	if resp.StatusCode() != 200 {
		log.Fatalf("產品詳情失敗，狀態碼 %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Println("產品詳情 OK")

	// 6. 下單
	orderBody := map[string]interface{}{
		"user": map[string]string{
			"name":    "冒煙測試",
			"tel":     "0912345678",
			"address": "台北市信義區測試路一段1號",
		},
		"orders": []map[string]interface{}{
			{"product_id": productID, "quantity": 1, "spec": "單人", "colors": "黑色"},
		},
		"payment_methods": 1,
	}
	resp, err = client.R().
		SetAuthToken(signinResp.Token).
		SetBody(orderBody).
		Post("/api/v1/orders")
	if err != nil {
		log.Fatalf("下單請求失敗: %v", err)
	}
	if resp.StatusCode() != 200 {
		log.Fatalf("下單失敗，狀態碼 %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Println("下單 OK")

	fmt.Println(">>> 冒煙測試全部通過")
}
