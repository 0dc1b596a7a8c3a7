// Package list implements the singly linked string list used for both
// history and the current cycle of completion suggestions.
package list

// Node is one owned string in the list.
type Node struct {
	Value string
	next  *Node
}

// Next returns the node following n, or nil at the end of the list.
func (n *Node) Next() *Node { return n.next }

// List is a singly linked list of strings with an integer cursor position
// used to track "where in the list the user currently is" (history paging,
// suggestion cycling).
type List struct {
	first *Node
	posn  int
	n     int
}

// New returns an empty list.
func New() *List { return &List{} }

// PushFront inserts s as the new head of the list (newest first).
func (l *List) PushFront(s string) {
	l.first = &Node{Value: s, next: l.first}
	l.n++
	l.posn = 0
}

// Remove unlinks node from the list. It is a no-op if node is nil or not
// found. Removing the currently selected node resets posn to 0.
func (l *List) Remove(node *Node) {
	if node == nil || l.first == nil {
		return
	}
	if l.first == node {
		l.first = node.next
		l.n--
		l.posn = 0
		return
	}
	for cur := l.first; cur.next != nil; cur = cur.next {
		if cur.next == node {
			cur.next = node.next
			l.n--
			l.posn = 0
			return
		}
	}
}

// Count returns the number of elements in the list.
func (l *List) Count() int { return l.n }

// First returns the head node, or nil if the list is empty.
func (l *List) First() *Node { return l.first }

// Empty reports whether the list has no elements.
func (l *List) Empty() bool { return l.first == nil }

// Posn returns the current cursor position.
func (l *List) Posn() int { return l.posn }

// SetPosn sets the cursor position directly, clamping to [0, count).
func (l *List) SetPosn(n int) {
	l.posn = clamp(n, l.n)
}

// Select moves the cursor to index n (clamped to the last valid index) and
// returns the node at that index along with the index actually selected.
// Returns (nil, 0) for an empty list.
func (l *List) Select(n int) (*Node, int) {
	if l.first == nil {
		l.posn = 0
		return nil, 0
	}
	idx := clamp(n, l.n)
	l.posn = idx
	cur := l.first
	for i := 0; i < idx; i++ {
		cur = cur.next
	}
	return cur, idx
}

// Current returns the node at the current cursor position.
func (l *List) Current() *Node {
	node, _ := l.Select(l.posn)
	return node
}

// Clear empties the list.
func (l *List) Clear() {
	l.first = nil
	l.n = 0
	l.posn = 0
}

func clamp(n, count int) int {
	if count == 0 {
		return 0
	}
	if n < 0 {
		return 0
	}
	if n >= count {
		return count - 1
	}
	return n
}
