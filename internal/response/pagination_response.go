package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// NewPagination describes page (1-based) of total items split into pages of
// pageSize. From and To are 1-based and inclusive; both are 0 on an empty page.
func NewPagination(page, pageSize, total int) *Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	p := &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int64((total + pageSize - 1) / pageSize),
		TotalItems: int64(total),
		HasMore:    end < total,
	}
	if end > start {
		p.From = start + 1
		p.To = end
	}
	return p
}

// Bounds returns the half-open slice range [start, end) of the page.
func (p *Pagination) Bounds() (start, end int) {
	if p.From == 0 {
		return 0, 0
	}
	return p.From - 1, p.To
}
