package domain

// WordID identifies a vocabulary word defined by the remote service
type WordID string

// ListKind names one of the per-user word lists
type ListKind string

const (
	ListStarred      ListKind = "starred"
	ListGraveyard    ListKind = "graveyard"
	ListWrongAnswers ListKind = "wrong-answers"
)

// MembershipSet is an ordered set of word IDs.
// Insertion order is kept for display only.
type MembershipSet struct {
	ids   []WordID
	index map[WordID]struct{}
}

// NewMembershipSet builds a set from ids, dropping duplicates
func NewMembershipSet(ids ...WordID) *MembershipSet {
	s := &MembershipSet{index: make(map[WordID]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Contains reports whether id is a member
func (s *MembershipSet) Contains(id WordID) bool {
	_, ok := s.index[id]
	return ok
}

// Add appends id if it is not already a member
func (s *MembershipSet) Add(id WordID) bool {
	return s.Insert(len(s.ids), id)
}

// Insert places id at pos (clamped to the set bounds) if it is not already a member
func (s *MembershipSet) Insert(pos int, id WordID) bool {
	if s.Contains(id) {
		return false
	}
	if s.index == nil {
		s.index = make(map[WordID]struct{})
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.ids) {
		pos = len(s.ids)
	}

	s.ids = append(s.ids, "")
	copy(s.ids[pos+1:], s.ids[pos:])
	s.ids[pos] = id
	s.index[id] = struct{}{}
	return true
}

// Remove deletes id and returns the position it occupied, or -1 if absent
func (s *MembershipSet) Remove(id WordID) int {
	pos := s.IndexOf(id)
	if pos < 0 {
		return -1
	}
	s.ids = append(s.ids[:pos], s.ids[pos+1:]...)
	delete(s.index, id)
	return pos
}

// IndexOf returns the position of id, or -1 if absent
func (s *MembershipSet) IndexOf(id WordID) int {
	if !s.Contains(id) {
		return -1
	}
	for i, member := range s.ids {
		if member == id {
			return i
		}
	}
	return -1
}

// Len returns the number of members
func (s *MembershipSet) Len() int {
	return len(s.ids)
}

// IDs returns a copy of the members in insertion order
func (s *MembershipSet) IDs() []WordID {
	out := make([]WordID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Clone returns an independent copy of the set
func (s *MembershipSet) Clone() *MembershipSet {
	return NewMembershipSet(s.ids...)
}
