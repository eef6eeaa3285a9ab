package pagination

// DefaultPageSize is the number of rows shown per admin table page.
const DefaultPageSize = 10

// TotalPages returns ceil(total/size). A non-positive size yields 0.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Page returns items[(page-1)*size : page*size], clipped to the slice bounds.
// Pages outside the collection produce an empty (non-nil) slice.
func Page[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Pager tracks the current page of one table. It is not safe for concurrent
// use; owners guard it with their own lock.
type Pager struct {
	current int
	size    int
}

func NewPager(size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{current: 1, size: size}
}

func (p *Pager) Current() int { return p.current }

func (p *Pager) Size() int { return p.size }

// SetPage moves to page when it lies in [1, totalPages] for a collection of
// total items. Anything else is ignored. It reports whether the page changed.
func (p *Pager) SetPage(page, total int) bool {
	if page < 1 || page > TotalPages(total, p.size) {
		return false
	}
	p.current = page
	return true
}

func (p *Pager) Next(total int) bool {
	return p.SetPage(p.current+1, total)
}

func (p *Pager) Prev(total int) bool {
	return p.SetPage(p.current-1, total)
}

// Reset returns to the first page.
func (p *Pager) Reset() {
	p.current = 1
}

// Clamp pulls the current page back inside the collection after it shrank.
func (p *Pager) Clamp(total int) {
	last := TotalPages(total, p.size)
	if last < 1 {
		last = 1
	}
	if p.current > last {
		p.current = last
	}
	if p.current < 1 {
		p.current = 1
	}
}

// View is a rendered page of a collection.
type View[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// Render slices items at the pager's current page.
func Render[T any](p *Pager, items []T) View[T] {
	total := len(items)
	pages := TotalPages(total, p.size)
	return View[T]{
		Items:      Page(items, p.current, p.size),
		Page:       p.current,
		PageSize:   p.size,
		TotalItems: total,
		TotalPages: pages,
		HasPrev:    p.current > 1,
		HasNext:    p.current < pages,
	}
}

// Map converts the items of a rendered page, keeping the paging metadata.
func Map[T, U any](v View[T], fn func(T) U) View[U] {
	items := make([]U, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, fn(item))
	}
	return View[U]{
		Items:      items,
		Page:       v.Page,
		PageSize:   v.PageSize,
		TotalItems: v.TotalItems,
		TotalPages: v.TotalPages,
		HasPrev:    v.HasPrev,
		HasNext:    v.HasNext,
	}
}
