// Package engine is the paged-table core: it owns the record store, recomputes the
// page-selector state after every mutation or navigation and notifies observers of the
// new current page.
//
// An Engine is single-owner and single-writer. It holds no locks; when several goroutines
// need to drive one engine, route them through a Queue, which executes commands one at a
// time on a single consumer goroutine.
package engine
