package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"符合規則", "HexShop12345", true},
		{"最短八字", "Abcdef12", true},
		{"太短", "Abc123", false},
		{"超過32字", "Abcdefghijklmnopqrstuvwxyz1234567", false},
		{"缺大寫", "abcdefg12345", false},
		{"缺小寫", "ABCDEFG12345", false},
		{"缺數字", "Abcdefghijk", false},
		{"空字串", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidPassword(tc.password))
		})
	}
}

func TestRecipientNameReg(t *testing.T) {
	valid := []string{"王小明", "Amy", "測試用戶123", "ab"}
	for _, name := range valid {
		if !recipientNameReg.MatchString(name) {
			t.Errorf("%q 應為有效的收件人姓名", name)
		}
	}

	invalid := []string{"A", "", "王 小明", "name!", "有符號@"}
	for _, name := range invalid {
		if recipientNameReg.MatchString(name) {
			t.Errorf("%q 不應為有效的收件人姓名", name)
		}
	}
}

func TestTwMobileReg(t *testing.T) {
	valid := []string{"0912345678", "0987654321"}
	for _, tel := range valid {
		if !twMobileReg.MatchString(tel) {
			t.Errorf("%q 應為有效手機號碼", tel)
		}
	}

	invalid := []string{"", "12345678", "091234567", "09123456789", "0812345678", "09abcdefgh"}
	for _, tel := range invalid {
		if twMobileReg.MatchString(tel) {
			t.Errorf("%q 不應為有效手機號碼", tel)
		}
	}
}

func TestEmailReg(t *testing.T) {
	valid := []string{"a@a.com", "user.name+tag@example.org", "ab_c%d@mail.example.tw"}
	for _, email := range valid {
		if !emailReg.MatchString(email) {
			t.Errorf("%q 應為有效 Email", email)
		}
	}

	invalid := []string{"", "a@a", "a.com", "@example.com", "a@.c", "a@example.c"}
	for _, email := range invalid {
		if emailReg.MatchString(email) {
			t.Errorf("%q 不應為有效 Email", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("123e4567-e89b-42d3-a456-426614174000"))
	assert.True(t, IsValidUUID(" 123e4567-e89b-42d3-a456-426614174000 "))
	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("123e4567e89b42d3a456426614174000"))
}
