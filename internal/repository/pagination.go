package repository

const (
	// DefaultPageSize is used when the client does not specify a page size.
	DefaultPageSize = 50

	// MaxPageSize caps how many rows a single page may return.
	MaxPageSize = 100
)

// PageParams carries the offset-pagination inputs shared by every list
// operation.
type PageParams struct {
	Page     int
	PageSize int
}

// Normalize clamps the parameters into their valid ranges: page >= 1,
// 1 <= page_size <= MaxPageSize, with DefaultPageSize when unset.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset computes the row offset for the normalized parameters.
func (p PageParams) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PageSize
}

// Page is the paginated list payload returned by every list endpoint.
//
// Total is the count of rows matching the filters independent of paging, so
// a page beyond the end still reports the correct total with empty items.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewPage assembles a Page from query results. Items is never nil so the
// JSON payload always contains an array.
func NewPage[T any](items []T, total int64, params PageParams) Page[T] {
	n := params.Normalize()
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:    items,
		Total:    total,
		Page:     n.Page,
		PageSize: n.PageSize,
	}
}
