package model

import (
	"encoding/json"
	"maps"
	"slices"
)

// Path represents an image path relative to the root of an image tree.
// Paths always use forward slashes so sets compare the same on every platform.
type Path string

// PathSet is a set of image paths. Iteration through Items is always in
// lexicographic order.
type PathSet struct {
	items map[Path]struct{}
}

// NewPathSet builds a set from the given paths. Duplicates collapse.
func NewPathSet(paths ...Path) PathSet {
	s := PathSet{items: make(map[Path]struct{}, len(paths))}
	for _, p := range paths {
		s.items[p] = struct{}{}
	}

	return s
}

// Add inserts p into the set.
func (s *PathSet) Add(p Path) {
	if s.items == nil {
		s.items = make(map[Path]struct{})
	}

	s.items[p] = struct{}{}
}

// Has reports whether p is a member of the set.
func (s PathSet) Has(p Path) bool {
	_, ok := s.items[p]
	return ok
}

// Len returns the number of members.
func (s PathSet) Len() int {
	return len(s.items)
}

// Empty reports whether the set has no members.
func (s PathSet) Empty() bool {
	return len(s.items) == 0
}

// Items returns the members as a freshly allocated, sorted slice.
func (s PathSet) Items() []Path {
	if len(s.items) == 0 {
		return []Path{}
	}

	return slices.Sorted(maps.Keys(s.items))
}

// Strings returns the sorted members as plain strings.
func (s PathSet) Strings() []string {
	items := s.Items()
	out := make([]string, len(items))

	for i, p := range items {
		out[i] = string(p)
	}

	return out
}

// Clone returns an independent copy of the set.
func (s PathSet) Clone() PathSet {
	return PathSet{items: maps.Clone(s.items)}
}

// Union returns s ∪ other.
func (s PathSet) Union(other PathSet) PathSet {
	out := s.Clone()
	for p := range other.items {
		out.Add(p)
	}

	return out
}

// Intersect returns s ∩ other.
func (s PathSet) Intersect(other PathSet) PathSet {
	out := NewPathSet()

	for p := range s.items {
		if other.Has(p) {
			out.Add(p)
		}
	}

	return out
}

// Difference returns s − other.
func (s PathSet) Difference(other PathSet) PathSet {
	out := NewPathSet()

	for p := range s.items {
		if !other.Has(p) {
			out.Add(p)
		}
	}

	return out
}

// MarshalJSON encodes the set as a sorted array. An empty set encodes as [].
func (s PathSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

// UnmarshalJSON decodes an array of paths into the set.
func (s *PathSet) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = NewPathSet()
	for _, p := range raw {
		s.Add(Path(p))
	}

	return nil
}
