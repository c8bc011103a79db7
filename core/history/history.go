// Package history records evaluated expressions, newest first, and
// provides up/down recall of previous inputs.
package history

import (
	"sync"

	"unitcalc/core/value"
)

// Item is one evaluated expression
type Item struct {
	Expression string
	Value      value.Value
	Text       string
	Err        error
}

// IsEmpty reports whether the item holds no expression
func (i Item) IsEmpty() bool {
	return i.Expression == ""
}

// Failed reports whether evaluation of the item failed
func (i Item) Failed() bool {
	return i.Err != nil
}

// String renders the item as "expression = result"
func (i Item) String() string {
	if i.IsEmpty() {
		return ""
	}
	if i.Failed() {
		return i.Expression + " : " + i.Err.Error()
	}
	return i.Expression + " = " + i.Text
}

// History is a bounded, concurrency-safe list of items
type History struct {
	items []Item
	limit int
	mu    sync.RWMutex
}

// New creates a history keeping at most limit items; limit <= 0 keeps all
func New(limit int) *History {
	return &History{limit: limit}
}

// Add records an item as the newest entry. Empty items are ignored.
func (h *History) Add(item Item) {
	if item.IsEmpty() {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = append([]Item{item}, h.items...)
	if h.limit > 0 && len(h.items) > h.limit {
		h.items = h.items[:h.limit]
	}
}

// Items returns a copy of the items, newest first
func (h *History) Items() []Item {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Item(nil), h.items...)
}

// Len returns the number of items
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.items)
}

// Answer returns the value of the newest successful item
func (h *History) Answer() (value.Value, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, item := range h.items {
		if !item.Failed() && item.Value != nil {
			return item.Value, true
		}
	}
	return nil, false
}

// Clear removes every item
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = nil
}

// Inputs returns the recorded expressions, newest first
func (h *History) Inputs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	inputs := make([]string, len(h.items))
	for i, item := range h.items {
		inputs[i] = item.Expression
	}
	return inputs
}
