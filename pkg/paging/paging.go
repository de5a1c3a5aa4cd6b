package paging

const (
	FirstPage       = 1
	DefaultPageSize = 10
)

type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int
}

func New[T any](items []T, page, pageSize, totalCount int) Page[T] {
	return Page[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}

func (p Page[T]) HasNext() bool {
	return p.Page*p.PageSize < p.TotalCount
}

func (p Page[T]) HasPrevious() bool {
	return p.Page > FirstPage
}

// Normalize clamps out-of-range paging parameters to their defaults.
func Normalize(page, pageSize int) (int, int) {
	if page < FirstPage {
		page = FirstPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

func Offset(page, pageSize int) int {
	return (page - FirstPage) * pageSize
}
