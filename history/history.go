// Package history keeps snapshots of completed conversions for display.
//
// The codec itself never reads or writes history; the UI records an Item
// after each successful conversion and renders the log newest first.
package history

import "time"

// Item is an immutable snapshot of one successful conversion.
type Item struct {
	ID      int
	Decimal string
	Binary  string
	Hex     string
	Layout  string
	At      time.Time
}

// Log holds the most recent conversions, newest first. It is not safe for
// concurrent use; the UI event loop is its only caller.
type Log struct {
	items  []Item
	nextID int
	depth  int
}

// New creates a log that retains at most depth items.
func New(depth int) *Log {
	if depth < 1 {
		depth = 1
	}
	return &Log{depth: depth, nextID: 1}
}

// Add records a conversion and returns the created item. The oldest item
// is dropped once the log is full.
func (l *Log) Add(decimal, binary, hex, layout string) Item {
	item := Item{
		ID:      l.nextID,
		Decimal: decimal,
		Binary:  binary,
		Hex:     hex,
		Layout:  layout,
		At:      time.Now(),
	}
	l.nextID++

	l.items = append([]Item{item}, l.items...)
	if len(l.items) > l.depth {
		l.items = l.items[:l.depth]
	}
	return item
}

// Items returns a copy of the log, newest first.
func (l *Log) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len reports the number of retained items.
func (l *Log) Len() int {
	return len(l.items)
}

// Clear drops all retained items. IDs keep increasing across clears.
func (l *Log) Clear() {
	l.items = nil
}
