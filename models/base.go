package models

// PaginationQuery 分页查询参数，pageSize为0时返回全部
type PaginationQuery struct {
	PageNum  int `form:"pageNum" json:"pageNum"`
	PageSize int `form:"pageSize" json:"pageSize"`
}

type PaginationResult struct {
	Total    int64 `form:"total" json:"total"`
	PageNum  int   `form:"pageNum" json:"pageNum"`
	PageSize int   `form:"pageSize" json:"pageSize"`
}

// NewPaginationResult 创建一个新的分页结果对象
func NewPaginationResult(total int64, pageNum, pageSize int) PaginationResult {
	return PaginationResult{
		Total:    total,
		PageNum:  pageNum,
		PageSize: pageSize,
	}
}
