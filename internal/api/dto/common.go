package dto

// Pagination 分頁資訊
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	Limit       int   `json:"limit"`
	TotalPage   int   `json:"total_page"`
}

// NewPagination 依總筆數計算總頁數（無條件進位）
func NewPagination(total int64, page, limit int) Pagination {
	totalPage := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:       total,
		CurrentPage: page,
		Limit:       limit,
		TotalPage:   totalPage,
	}
}
