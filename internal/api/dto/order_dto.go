package dto

// ==================== 成立訂單 ====================

// OrderUser 收件人資訊
type OrderUser struct {
	Name    string `json:"name" binding:"required,recipient_name"`
	Tel     string `json:"tel" binding:"required,tw_mobile"`
	Address string `json:"address" binding:"required,not_blank,max=30"`
}

// OrderItem 訂單明細項目
// Quantity 用指標，欄位缺漏與 0 才能區分；負數由 gte 擋下
type OrderItem struct {
	ProductID string `json:"product_id" binding:"required,not_blank"`
	Quantity  *int   `json:"quantity" binding:"required,gte=0"`
	Spec      string `json:"spec" binding:"required,not_blank"`
	Colors    string `json:"colors" binding:"required,not_blank"`
}

// PostOrderRequest 成立訂單請求
type PostOrderRequest struct {
	User           OrderUser   `json:"user" binding:"required"`
	Orders         []OrderItem `json:"orders" binding:"required,min=1,dive"`
	PaymentMethods int         `json:"payment_methods" binding:"required,oneof=1 2 3"`
}
