package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPagination_FirstPage(t *testing.T) {
	p := NewPagination(1, 20, 25)
	assert.Equal(t, 2, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPagination_LastPage(t *testing.T) {
	p := NewPagination(3, 10, 25)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPagination_Empty(t *testing.T) {
	p := NewPagination(1, 20, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestNewPagination_ExactFit(t *testing.T) {
	p := NewPagination(2, 10, 20)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
