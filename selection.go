package tablestate

import "slices"

// Selection is an insertion ordered set of row IDs.
// Membership is independent of pagination.
//
// The zero value is an empty Selection ready to use.
type Selection[K comparable] struct {
	index map[K]int
	ids   []K
}

// Has returns true if id is selected.
func (s *Selection[K]) Has(id K) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of selected IDs.
func (s *Selection[K]) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the selected IDs in the order they were selected.
func (s *Selection[K]) IDs() []K {
	return slices.Clone(s.ids)
}

// Add selects id and returns false if it was already selected.
func (s *Selection[K]) Add(id K) bool {
	if s.Has(id) {
		return false
	}
	if s.index == nil {
		s.index = make(map[K]int)
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	return true
}

// Remove deselects id and returns false if it was not selected.
func (s *Selection[K]) Remove(id K) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	delete(s.index, id)
	s.ids = slices.Delete(s.ids, i, i+1)
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
	return true
}

// Toggle removes id if selected or adds it otherwise
// and returns if id is selected afterwards.
func (s *Selection[K]) Toggle(id K) bool {
	if s.Remove(id) {
		return false
	}
	s.Add(id)
	return true
}

// ContainsAll returns true if all ids are selected.
func (s *Selection[K]) ContainsAll(ids []K) bool {
	for _, id := range ids {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// Replace selects exactly the passed ids.
func (s *Selection[K]) Replace(ids []K) {
	s.Clear()
	for _, id := range ids {
		s.Add(id)
	}
}

// Clear deselects all IDs.
func (s *Selection[K]) Clear() {
	s.index = nil
	s.ids = nil
}
