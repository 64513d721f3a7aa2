package models

// PaginationParams are the page and page_size query arguments of paginated
// endpoints. Page is capped so that Offset cannot overflow.
type PaginationParams struct {
	Page     int `json:"page" mapstructure:"page" validate:"min=1,max=10000000"`
	PageSize int `json:"page_size" mapstructure:"page_size" validate:"min=1,max=100"`
}

// Offset returns the number of rows preceding the requested page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PaginationMetadata is serialized into the X-Pagination response header.
// Optional pages are omitted when they do not exist.
type PaginationMetadata struct {
	Total        int `json:"total"`
	TotalPages   int `json:"total_pages"`
	FirstPage    int `json:"first_page,omitempty"`
	LastPage     int `json:"last_page,omitempty"`
	Page         int `json:"page,omitempty"`
	PreviousPage int `json:"previous_page,omitempty"`
	NextPage     int `json:"next_page,omitempty"`
}

// NewPaginationMetadata computes the metadata of page p out of total rows.
func NewPaginationMetadata(p PaginationParams, total int) PaginationMetadata {
	meta := PaginationMetadata{Total: total}
	if total == 0 || p.PageSize <= 0 {
		return meta
	}

	meta.TotalPages = (total + p.PageSize - 1) / p.PageSize
	meta.FirstPage = 1
	meta.LastPage = meta.TotalPages

	if p.Page > meta.TotalPages {
		return meta
	}

	meta.Page = p.Page
	if p.Page > 1 {
		meta.PreviousPage = p.Page - 1
	}
	if p.Page < meta.TotalPages {
		meta.NextPage = p.Page + 1
	}

	return meta
}
