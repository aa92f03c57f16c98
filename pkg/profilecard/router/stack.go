package router

// StackEntry is a route left behind by a forward transition, together with
// whatever resume state the screen attached to it.
type StackEntry struct {
	Route  Route
	Resume any
}

// Stack holds the back history. With two routes it never grows past one entry,
// but nothing here depends on that.
type Stack struct {
	entries []StackEntry
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0, 1),
	}
}

// Push adds an entry on top.
func (s *Stack) Push(route Route, resume any) {
	s.entries = append(s.entries, StackEntry{
		Route:  route,
		Resume: resume,
	})
}

// Pop removes and returns the top entry, or nil when empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it, or nil when empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty reports whether there is nothing to go back to.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}
