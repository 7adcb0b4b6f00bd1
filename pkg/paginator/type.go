package paginator

// PaginateQuery carries the page/limit query parameters of a list request.
type PaginateQuery struct {
	Page  int   `json:"page" form:"page"`   // 1-indexed page number
	Limit int64 `json:"limit" form:"limit"` // Items per page
}

// Paginator describes one page of a query result.
type Paginator struct {
	Total       int64 `json:"total"`        // Items across all pages
	Count       int64 `json:"count"`        // Items in this page
	PerPage     int64 `json:"per_page"`     // Page size
	CurrentPage int   `json:"current_page"` // 1-indexed page number
}

// PaginatorResponse is the wire format for pagination metadata.
type PaginatorResponse struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}
