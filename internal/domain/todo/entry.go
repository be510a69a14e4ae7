// Package todo defines the to-do entry entity.
package todo

// Entry is one to-do item. ID is assigned by storage on insert and never
// changes; Text is stored as given.
type Entry struct {
	ID   int64
	Text string
}
