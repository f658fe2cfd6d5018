package client

// PageItem is one entry of a rendered pagination control: either a page
// number or an ellipsis placeholder for a collapsed gap.
type PageItem struct {
	Page     int
	Ellipsis bool
}

// PaginationRange computes the page numbers a pagination widget should
// display. Page 1, page total and the window [current-delta, current+delta]
// are always kept. A gap of exactly one missing number between kept pages
// is filled in; wider gaps collapse into a single ellipsis entry.
//
// For example, current 5 of 10 with delta 1 renders as
// 1 … 4 5 6 … 10, while current 2 of 4 renders as 1 2 3 4.
func PaginationRange(current, total, delta int) []PageItem {
	kept := make([]int, 0, total)
	for i := 1; i <= total; i++ {
		if i == 1 || i == total || (i >= current-delta && i <= current+delta) {
			kept = append(kept, i)
		}
	}

	items := make([]PageItem, 0, len(kept))
	last := 0
	for _, num := range kept {
		if last > 0 {
			if num-last == 2 {
				items = append(items, PageItem{Page: last + 1})
			} else if num-last > 2 {
				items = append(items, PageItem{Ellipsis: true})
			}
		}
		items = append(items, PageItem{Page: num})
		last = num
	}
	return items
}
