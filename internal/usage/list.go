// Package usage tracks recency order over integer slot handles.
package usage

const none = -1

// List is an intrusive doubly-linked order over dense non-negative integer
// handles. The prev/next links live in handle-indexed slices, so linking a
// handle never allocates a node. The front of the list is the least-recently
// pushed (or moved) handle.
//
// A handle must be linked at most once; callers are responsible for not
// pushing a handle that is already linked or removing one that is not.
// List is not safe for concurrent use.
type List struct {
	prev []int
	next []int
	head int
	tail int
	size int
}

// NewList creates a List pre-sized for capacity handles.
func NewList(capacity int) *List {
	return &List{
		prev: make([]int, 0, capacity),
		next: make([]int, 0, capacity),
		head: none,
		tail: none,
	}
}

func (l *List) grow(h int) {
	for len(l.prev) <= h {
		l.prev = append(l.prev, none)
		l.next = append(l.next, none)
	}
}

// PushBack links h at the most-recently-used end.
func (l *List) PushBack(h int) {
	l.grow(h)
	l.prev[h] = l.tail
	l.next[h] = none
	if l.tail != none {
		l.next[l.tail] = h
	} else {
		l.head = h
	}
	l.tail = h
	l.size++
}

// Remove unlinks h.
func (l *List) Remove(h int) {
	p, n := l.prev[h], l.next[h]
	if p != none {
		l.next[p] = n
	} else {
		l.head = n
	}
	if n != none {
		l.prev[n] = p
	} else {
		l.tail = p
	}
	l.prev[h] = none
	l.next[h] = none
	l.size--
}

// MoveToBack relinks h at the most-recently-used end in O(1).
func (l *List) MoveToBack(h int) {
	if l.tail == h {
		return
	}
	l.Remove(h)
	l.PushBack(h)
}

// Front returns the least-recently-used handle.
// ok is false when the list is empty.
func (l *List) Front() (h int, ok bool) {
	if l.head == none {
		return 0, false
	}
	return l.head, true
}

// Linked reports whether h is currently linked.
func (l *List) Linked(h int) bool {
	if h < 0 || h >= len(l.prev) {
		return false
	}
	return l.head == h || l.prev[h] != none || l.next[h] != none
}

// Handles returns the linked handles in order from least- to
// most-recently-used.
func (l *List) Handles() []int {
	hs := make([]int, 0, l.size)
	for h := l.head; h != none; h = l.next[h] {
		hs = append(hs, h)
	}
	return hs
}

// Reset unlinks every handle while keeping the allocated link tables.
func (l *List) Reset() {
	l.prev = l.prev[:0]
	l.next = l.next[:0]
	l.head = none
	l.tail = none
	l.size = 0
}

// Len returns the number of linked handles.
func (l *List) Len() int {
	return l.size
}
