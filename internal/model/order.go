package model

// 付款方式
const (
	PaymentMethodCreditCard = 1
	PaymentMethodTransfer   = 2
	PaymentMethodCOD        = 3
)

// Order 訂單主表（收件資訊 + 付款方式）
type Order struct {
	BaseModel
	UsersID int64 `gorm:"index;not null"`
	User    *User `gorm:"foreignKey:UsersID"`

	// 收件人資訊
	Name    string `gorm:"size:50;not null"`
	Tel     string `gorm:"size:20;not null"`
	Address string `gorm:"size:30;not null"`

	IsPaid           bool `gorm:"default:false"`
	PaymentMethodsID int  `gorm:"not null"`

	Items []OrderLinkProduct `gorm:"foreignKey:OrdersID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderLinkProduct 訂單明細，每列對應一項商品
type OrderLinkProduct struct {
	ID         int64  `gorm:"primary_key;AUTO_INCREMENT"`
	OrdersID   int64  `gorm:"index;not null"`
	ProductsID string `gorm:"type:varchar(36);not null"`

	Quantity int    `gorm:"not null"`
	Spec     string `gorm:"size:50;not null"`
	Colors   string `gorm:"size:50;not null"`
}

func (OrderLinkProduct) TableName() string {
	return "order_link_products"
}
