// Package dataset holds the record collection behind a paged table.
//
// A Store owns an ordered slice of Records and applies the three mutations the
// table supports:
//   - Append: add rows at the end, in order
//   - Modify: overwrite rows starting at an absolute index, appending past the end
//   - Delete: remove every row structurally equal to a target row
//
// The store never computes pagination itself; callers recompute page state from
// Total after each mutation.
package dataset
