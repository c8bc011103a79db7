package history

// Recall walks previous inputs like an input line's up and down keys.
// Index 0 is the scratch entry being edited; Up moves to older inputs
// and Down back toward the scratch entry, which keeps its edits.
type Recall struct {
	entries []string
	index   int
}

// NewRecall creates a recall cursor positioned on an empty scratch entry
func NewRecall() *Recall {
	return &Recall{entries: []string{""}}
}

// Edit replaces the text of the current entry
func (r *Recall) Edit(text string) {
	r.entries[r.index] = text
}

// Submit records text as the newest input and returns to a fresh scratch entry
func (r *Recall) Submit(text string) {
	r.entries[0] = text
	r.entries = append([]string{""}, r.entries...)
	r.index = 0
}

// Up moves to the next older input. It reports false at the oldest one.
func (r *Recall) Up() (string, bool) {
	if r.index+1 >= len(r.entries) {
		return r.entries[r.index], false
	}
	r.index++
	return r.entries[r.index], true
}

// Down moves to the next newer input. It reports false at the scratch entry.
func (r *Recall) Down() (string, bool) {
	if r.index == 0 {
		return r.entries[0], false
	}
	r.index--
	return r.entries[r.index], true
}

// Current returns the text of the current entry
func (r *Recall) Current() string {
	return r.entries[r.index]
}

// Index returns the cursor position, 0 being the scratch entry
func (r *Recall) Index() int {
	return r.index
}
