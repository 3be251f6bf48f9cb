package survey

// TotalPages returns the number of fixed-size pages needed for count
// questions: ceil(count / pageSize). A survey with no questions has no
// question pages.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// PageBounds maps a page index to its slice of the question sequence as a
// half-open [start, end) range. Every page holds pageSize questions except
// possibly the last. Pure function of its inputs.
func PageBounds(page, count, pageSize int) (start, end int, err error) {
	total := TotalPages(count, pageSize)
	if page < 0 || page >= total {
		return 0, 0, &ErrPageOutOfRange{Page: page, Pages: total}
	}

	start = page * pageSize
	end = start + pageSize
	if end > count {
		end = count
	}
	return start, end, nil
}
