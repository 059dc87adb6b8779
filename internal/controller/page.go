package controller

import (
	"regexp"
	"strconv"
)

// 頁碼必須是純數字字串
var pageNumberReg = regexp.MustCompile(`^[0-9]+$`)

// parsePage 解析 page 查詢參數，空值視為第 1 頁
// 非數字、小於 1 都視為無效
func parsePage(raw string) (int, bool) {
	if raw == "" {
		return 1, true
	}
	if !pageNumberReg.MatchString(raw) {
		return 0, false
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}
