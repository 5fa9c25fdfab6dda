package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMembershipSet_DropsDuplicates(t *testing.T) {
	s := NewMembershipSet("a", "b", "a", "c", "b")

	assert.Equal(t, []WordID{"a", "b", "c"}, s.IDs())
	assert.Equal(t, 3, s.Len())
}

func TestMembershipSet_Add(t *testing.T) {
	s := NewMembershipSet("a")

	assert.True(t, s.Add("b"))
	assert.False(t, s.Add("a"))
	assert.Equal(t, []WordID{"a", "b"}, s.IDs())
}

func TestMembershipSet_ZeroValue(t *testing.T) {
	var s MembershipSet

	assert.False(t, s.Contains("a"))
	assert.Equal(t, -1, s.Remove("a"))
	assert.True(t, s.Add("a"))
	assert.True(t, s.Contains("a"))
}

func TestMembershipSet_Insert(t *testing.T) {
	tests := []struct {
		name     string
		pos      int
		expected []WordID
	}{
		{name: "front", pos: 0, expected: []WordID{"x", "a", "b"}},
		{name: "middle", pos: 1, expected: []WordID{"a", "x", "b"}},
		{name: "end", pos: 2, expected: []WordID{"a", "b", "x"}},
		{name: "past end is clamped", pos: 10, expected: []WordID{"a", "b", "x"}},
		{name: "negative is clamped", pos: -3, expected: []WordID{"x", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMembershipSet("a", "b")
			assert.True(t, s.Insert(tt.pos, "x"))
			assert.Equal(t, tt.expected, s.IDs())
		})
	}
}

func TestMembershipSet_Remove(t *testing.T) {
	s := NewMembershipSet("a", "b", "c")

	assert.Equal(t, 1, s.Remove("b"))
	assert.Equal(t, -1, s.Remove("b"))
	assert.False(t, s.Contains("b"))
	assert.Equal(t, []WordID{"a", "c"}, s.IDs())
}

func TestMembershipSet_CloneIsIndependent(t *testing.T) {
	s := NewMembershipSet("a", "b")
	c := s.Clone()

	c.Remove("a")
	c.Add("z")

	assert.Equal(t, []WordID{"a", "b"}, s.IDs())
	assert.Equal(t, []WordID{"b", "z"}, c.IDs())
}

func TestMembershipSet_IDsReturnsCopy(t *testing.T) {
	s := NewMembershipSet("a")
	ids := s.IDs()
	ids[0] = "mutated"

	assert.True(t, s.Contains("a"))
	assert.Equal(t, []WordID{"a"}, s.IDs())
}
