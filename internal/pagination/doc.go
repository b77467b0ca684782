// Package pagination computes the page-selector view of a paged table.
//
// Given a record count, a Config and a requested page, Compute returns a State:
//   - TotalPages and the clamped CurrentPage
//   - Pages: the window of body page numbers between the fixed first/last buttons
//   - ShowPrevEllipsis / ShowNextEllipsis: quick-jump affordances around the window
//   - ShowFirst / ShowLast, PrevEnabled / NextEnabled
//
// Buttons turns a State into an ordered list of declarative button descriptors so a
// presentation layer can reconcile its widgets without re-deriving any of the rules.
// Target and ParsePage resolve navigation actions and typed page input to page numbers.
//
// Everything in this package is a pure function of its inputs.
package pagination
