package dto

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ==================== 驗證規則 ====================

var (
	// 收件人姓名：2~50 個字元，僅限任意語言的字母與數字（含中文、英文、數字）
	recipientNameReg = regexp.MustCompile(`^[\p{L}\p{N}]{2,50}$`)
	// 台灣手機號碼：09 開頭，後面 8 個數字
	twMobileReg = regexp.MustCompile(`^09[0-9]{8}$`)
	// Email：帳號@網域，網域需有至少兩個字母的結尾
	emailReg = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	// UUID v4 格式
	uuidReg = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	passwordDigitReg = regexp.MustCompile(`[0-9]`)
	passwordLowerReg = regexp.MustCompile(`[a-z]`)
	passwordUpperReg = regexp.MustCompile(`[A-Z]`)
)

// RegisterValidators 把自訂規則掛到 gin 的 validator 引擎上
// 必須在路由註冊前呼叫一次
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("recipient_name", func(fl validator.FieldLevel) bool {
		return recipientNameReg.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("tw_mobile", func(fl validator.FieldLevel) bool {
		return twMobileReg.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailReg.MatchString(fl.Field().String())
	})

	// 會員名稱：去除前後空白後 2~10 個字元
	_ = v.RegisterValidation("account_name", func(fl validator.FieldLevel) bool {
		name := strings.TrimSpace(fl.Field().String())
		n := utf8.RuneCountInString(name)
		return n >= 2 && n <= 10
	})

	_ = v.RegisterValidation("not_blank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// IsValidPassword 密碼規則：8~32 字元，需包含數字、小寫與大寫英文
func IsValidPassword(password string) bool {
	n := len(password)
	if n < 8 || n > 32 {
		return false
	}
	return passwordDigitReg.MatchString(password) &&
		passwordLowerReg.MatchString(password) &&
		passwordUpperReg.MatchString(password)
}

// IsValidUUID 檢查字串是否為 UUID 格式
func IsValidUUID(s string) bool {
	return uuidReg.MatchString(strings.TrimSpace(s))
}
