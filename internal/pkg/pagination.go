package pkg

import "strconv"

// DefaultPageSize 每页条数，可被 config 覆盖
const DefaultPageSize = 10

// Pagination 分页元数据。页码从 1 开始。
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPagination 规范化页码：非数字或 <1 按 1 处理，超出范围钳到最后一页，
// 空结果集也算一页（空页）。
func NewPagination(pageStr string, total int64, size int) Pagination {
	if size <= 0 {
		size = DefaultPageSize
	}

	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	return Pagination{
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: pages,
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p Pagination) HasPrev() bool {
	return p.Page > 1
}
