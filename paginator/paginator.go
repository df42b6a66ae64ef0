// Package paginator slices an ordered result set into fixed-size pages.
// The ordering is the caller's: listings pass posts newest-first, the
// comment thread oldest-first.
package paginator

import "strconv"

// Page is one page of results plus the metadata templates need to
// render "page N of M" and next/previous links.
type Page[T any] struct {
	Items  []T
	Number int // 1-indexed
	Size   int
	Total  int // items across all pages
	Pages  int // total page count, at least 1
}

func (p Page[T]) HasNext() bool {
	return p.Number < p.Pages
}

func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

func (p Page[T]) NextNumber() int {
	return p.Number + 1
}

func (p Page[T]) PrevNumber() int {
	return p.Number - 1
}

// Paginate returns the requested page of items. pageParam is the raw
// query value: absent or malformed defaults to page 1, anything below 1
// clamps to 1, anything past the last page clamps to the last page.
func Paginate[T any](items []T, size int, pageParam string) Page[T] {
	if size < 1 {
		size = 1
	}
	total := len(items)
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	number, err := strconv.Atoi(pageParam)
	if err != nil || number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}
	start := (number - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Items:  items[start:end],
		Number: number,
		Size:   size,
		Total:  total,
		Pages:  pages,
	}
}
