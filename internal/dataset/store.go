package dataset

import (
	"fmt"
	"slices"
)

// Record is one row of string fields. Records have no identity beyond their contents.
type Record []string

// Equal reports whether r and other hold the same fields in the same order.
func (r Record) Equal(other Record) bool {
	return slices.Equal(r, other)
}

// Clone returns a copy of r that shares no backing array with it.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return slices.Clone(r)
}

// Store is the ordered record collection behind a paged table.
// It is not safe for concurrent use; the owning engine serializes access.
type Store struct {
	records []Record
}

// NewStore creates a store seeded with a copy of initial.
func NewStore(initial []Record) *Store {
	s := &Store{records: make([]Record, 0, len(initial))}
	s.Append(initial)
	return s
}

// Append adds rows to the end of the collection, preserving their order.
func (s *Store) Append(rows []Record) {
	for _, row := range rows {
		s.records = append(s.records, row.Clone())
	}
}

// Modify overwrites rows starting at the absolute index start. Rows that land past
// the end of the collection are appended instead, so a modify spanning the last page
// boundary needs no separate append.
//
// A negative start returns ErrInvalidArgument and leaves the collection untouched.
func (s *Store) Modify(rows []Record, start int) error {
	if start < 0 {
		return fmt.Errorf("%w: modify start index must be >= 0, got %d", ErrInvalidArgument, start)
	}

	for i, row := range rows {
		idx := start + i
		if idx < len(s.records) {
			s.records[idx] = row.Clone()
			continue
		}
		s.records = append(s.records, row.Clone())
	}
	return nil
}

// Delete removes, for every target row, all records equal to it. Deleting K targets can
// remove more than K records when the collection holds duplicates.
// It returns the number of records removed.
func (s *Store) Delete(rows []Record) int {
	before := len(s.records)
	for _, target := range rows {
		s.records = slices.DeleteFunc(s.records, func(r Record) bool {
			return r.Equal(target)
		})
	}
	return before - len(s.records)
}

// Page returns a copy of the records on the 1-based page of the given size:
// indexes [(page-1)*size, min(page*size, total)). Pages outside the data are empty.
func (s *Store) Page(page, size int) []Record {
	if page < 1 || size < 1 {
		return []Record{}
	}

	start := (page - 1) * size
	if start >= len(s.records) {
		return []Record{}
	}
	end := min(start+size, len(s.records))

	return cloneRecords(s.records[start:end])
}

// Total returns the number of records.
func (s *Store) Total() int {
	return len(s.records)
}

// All returns a copy of every record in order.
func (s *Store) All() []Record {
	return cloneRecords(s.records)
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}
