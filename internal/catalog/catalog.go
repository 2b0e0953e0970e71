// Package catalog holds the in-memory ordered list of book records.
package catalog

import (
	"sync"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type ChangeKind string

const (
	ChangeAdded       ChangeKind = "added"
	ChangeRemoved     ChangeKind = "removed"
	ChangeReadToggled ChangeKind = "read_toggled"
)

// Change describes a successful mutation. Book is the record as it was
// after the mutation; for removals it keeps the position it had before.
type Change struct {
	Kind ChangeKind
	Book entities.BookRecord
}

// Observer is notified after every successful mutation, outside the lock.
type Observer interface {
	BookChanged(change Change)
}

// Catalog owns the ordered sequence of records. Insertion order is display
// order and records[i].Position == i holds after every call.
type Catalog struct {
	mu       sync.RWMutex
	records  []entities.BookRecord
	observer Observer
}

func New() *Catalog {
	return &Catalog{}
}

// SetObserver installs the change observer. Pass nil to remove it.
func (c *Catalog) SetObserver(observer Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = observer
}

// Add appends the record and assigns it the new last position.
func (c *Catalog) Add(record entities.BookRecord) entities.BookRecord {
	c.mu.Lock()
	record.Position = len(c.records)
	c.records = append(c.records, record)
	observer := c.observer
	c.mu.Unlock()

	notify(observer, ChangeAdded, record)
	return record
}

// Remove splices out the record at position and shifts every later record
// down by one.
func (c *Catalog) Remove(position int) (entities.BookRecord, error) {
	c.mu.Lock()
	if err := c.checkIndex(position); err != nil {
		c.mu.Unlock()
		return entities.BookRecord{}, err
	}
	removed := c.records[position]
	c.records = append(c.records[:position], c.records[position+1:]...)
	c.reindexFrom(position)
	observer := c.observer
	c.mu.Unlock()

	notify(observer, ChangeRemoved, removed)
	return removed, nil
}

// ToggleRead flips the read flag of the record at position.
func (c *Catalog) ToggleRead(position int) (entities.BookRecord, error) {
	c.mu.Lock()
	if err := c.checkIndex(position); err != nil {
		c.mu.Unlock()
		return entities.BookRecord{}, err
	}
	c.records[position].HasBeenRead = !c.records[position].HasBeenRead
	toggled := c.records[position]
	observer := c.observer
	c.mu.Unlock()

	notify(observer, ChangeReadToggled, toggled)
	return toggled, nil
}

// Get returns a copy of the record at position.
func (c *Catalog) Get(position int) (entities.BookRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.checkIndex(position); err != nil {
		return entities.BookRecord{}, err
	}
	return c.records[position], nil
}

// Books returns a snapshot of the catalog in display order.
func (c *Catalog) Books() []entities.BookRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	books := make([]entities.BookRecord, len(c.records))
	copy(books, c.records)
	return books
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// reindexFrom restores the position invariant for every record at or after
// from. Callers hold the write lock.
func (c *Catalog) reindexFrom(from int) {
	for i := from; i < len(c.records); i++ {
		c.records[i].Position = i
	}
}

func (c *Catalog) checkIndex(position int) error {
	if position < 0 || position >= len(c.records) {
		return &IndexError{Position: position, Len: len(c.records)}
	}
	return nil
}

func notify(observer Observer, kind ChangeKind, book entities.BookRecord) {
	if observer != nil {
		observer.BookChanged(Change{Kind: kind, Book: book})
	}
}
