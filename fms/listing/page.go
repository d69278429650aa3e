package listing

const DefaultPageSize = 20

type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices a 1-based page out of records. Out-of-range pages are empty.
func Paginate[T any](records []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}

	total := len(records)
	pages := 0
	if total > 0 {
		pages = (total-1)/size + 1
	}
	p := Page[T]{
		Items:      []T{},
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: pages,
	}

	// compared before multiplying so a huge page cannot overflow
	if page > pages {
		return p
	}
	start := (page - 1) * size
	end := total
	if total-start > size {
		end = start + size
	}
	p.Items = append(p.Items, records[start:end]...)
	return p
}
