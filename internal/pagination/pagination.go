package pagination

import (
	"gorm.io/gorm"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Window holds limit/offset parameters parsed from query strings.
type Window struct {
	Limit  int `form:"limit" binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// Defaults fills in the default limit and caps it at MaxLimit.
func (w *Window) Defaults() {
	if w.Limit <= 0 {
		w.Limit = DefaultLimit
	}
	if w.Limit > MaxLimit {
		w.Limit = MaxLimit
	}
	if w.Offset < 0 {
		w.Offset = 0
	}
}

// ListResponse wraps a window of items with its bounds.
type ListResponse[T any] struct {
	Data   []T `json:"data"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}

// NewListResponse creates a ListResponse, never returning a null data array.
func NewListResponse[T any](data []T, w Window) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{
		Data:   data,
		Limit:  w.Limit,
		Offset: w.Offset,
		Count:  len(data),
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the window.
func Paginate(w Window) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(w.Offset).Limit(w.Limit)
	}
}
