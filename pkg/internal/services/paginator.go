package services

// FeedPageSize is the fixed number of posts on every feed page.
const FeedPageSize = 10

// Paginate turns a 1-based page number into an offset window over total rows.
// Page numbers below 1 clamp up to 1; pages past the end stay valid and simply
// produce an empty window with HasNext false. Callers rely on both edges.
func Paginate(total int64, page int, size int) (offset int, limit int, hasNext bool, hasPrev bool) {
	if page < 1 {
		page = 1
	}

	offset = (page - 1) * size
	limit = size
	hasNext = int64(page*size) < total
	hasPrev = page > 1

	return
}
