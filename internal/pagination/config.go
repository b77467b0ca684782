package pagination

import (
	"errors"
	"fmt"
)

// Pagination defaults and limits.
const (
	DefaultPageSize          = 25
	MinPageSize              = 1
	DefaultMiddleButtonCount = 10
	MinMiddleButtonCount     = 1
	FirstPage                = 1
)

// Common validation errors.
var (
	ErrInvalidPageSize          = errors.New("page size must be >= 1")
	ErrInvalidMiddleButtonCount = errors.New("middle button count must be >= 1")
	ErrInvalidPageInput         = errors.New("page input must be a whole number")
)

// Config is the construction-time pagination configuration.
type Config struct {
	// PageSize is the number of records per page.
	PageSize int `json:"page_size" yaml:"page_size"`

	// MiddleButtonCount is the number of body page buttons shown between the fixed
	// first and last page buttons.
	MiddleButtonCount int `json:"middle_button_count" yaml:"middle_button_count"`
}

// DefaultConfig returns a Config with 25 records per page and 10 body buttons.
func DefaultConfig() Config {
	return Config{
		PageSize:          DefaultPageSize,
		MiddleButtonCount: DefaultMiddleButtonCount,
	}
}

// Validate checks that both values are within bounds.
func (c Config) Validate() error {
	if c.PageSize < MinPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.PageSize)
	}
	if c.MiddleButtonCount < MinMiddleButtonCount {
		return fmt.Errorf("%w: got %d", ErrInvalidMiddleButtonCount, c.MiddleButtonCount)
	}
	return nil
}

// TotalPages returns ceil(totalRecords/pageSize), never less than one page.
// An empty table still renders a single (empty) page.
func TotalPages(totalRecords, pageSize int) int {
	if pageSize < MinPageSize || totalRecords <= 0 {
		return FirstPage
	}
	return (totalRecords + pageSize - 1) / pageSize
}

// ClampPage bounds page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	return max(FirstPage, min(page, max(totalPages, FirstPage)))
}
