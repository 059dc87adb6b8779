package model

// 系統角色
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User 會員帳號
type User struct {
	BaseModel
	Name     string `gorm:"size:10;not null"`
	Email    string `gorm:"size:255;uniqueIndex;not null"`
	Password string `gorm:"size:72;not null"` // bcrypt 雜湊，絕不回傳
	Role     string `gorm:"size:20;default:'USER'"`
}

func (User) TableName() string {
	return "users"
}
