package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateWindows(t *testing.T) {
	// 13 posts with pages of 10: full page, partial page, empty page
	offset, limit, hasNext, hasPrev := Paginate(13, 1, 10)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 10, limit)
	assert.True(t, hasNext)
	assert.False(t, hasPrev)

	offset, _, hasNext, hasPrev = Paginate(13, 2, 10)
	assert.Equal(t, 10, offset)
	assert.False(t, hasNext)
	assert.True(t, hasPrev)

	offset, _, hasNext, hasPrev = Paginate(13, 3, 10)
	assert.Equal(t, 20, offset)
	assert.False(t, hasNext)
	assert.True(t, hasPrev)
}

func TestPaginateClampsLowPages(t *testing.T) {
	for _, page := range []int{0, -1, -100} {
		offset, limit, _, hasPrev := Paginate(42, page, 10)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 10, limit)
		assert.False(t, hasPrev)
	}
}

func TestPaginateEmptyTotal(t *testing.T) {
	offset, _, hasNext, hasPrev := Paginate(0, 1, 10)
	assert.Equal(t, 0, offset)
	assert.False(t, hasNext)
	assert.False(t, hasPrev)
}

func TestPaginateExactBoundary(t *testing.T) {
	// 20 posts fill exactly two pages, page 2 must not advertise a third
	_, _, hasNext, _ := Paginate(20, 2, 10)
	assert.False(t, hasNext)
}
