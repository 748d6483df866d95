// Package sparse provides a sparse set data structure for efficient membership testing.
//
// A sparse set is a data structure that supports O(1) insertion, deletion, and membership
// testing while maintaining a dense list of elements. matchmask uses it to track which of
// the 256 possible byte values a MatchMask table has precomputed an occurrence bitset for,
// so a table can report its accelerated alphabet without scanning all 256 slots.
package sparse

const defaultCapacity = 64

// SparseSet is a set of uint32 values that supports O(1) operations.
// It maintains both a sparse array (for membership testing) and a dense array
// (for iteration). The sparse array maps values to indices in the dense array.
//
// This implementation is optimized for cases where the universe of possible
// values is known and relatively small (e.g., byte values 0-255).
type SparseSet struct {
	sparse []uint32 // Maps value -> index in dense
	dense  []uint32 // Contains the actual values
	size   uint32   // Current number of elements
}

// NewSparseSet creates a new sparse set with the given capacity.
// The capacity represents the maximum value that can be stored (exclusive).
// A capacity of 0 defaults to defaultCapacity.
func NewSparseSet(capacity uint32) *SparseSet {
	if capacity == 0 {
		capacity = defaultCapacity
	}
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
		size:   0,
	}
}

// Insert adds a value to the set, returning true if it was newly added and
// false if it was already present. Values >= Capacity() are silently ignored
// and report false.
func (s *SparseSet) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	if value >= uint32(len(s.sparse)) {
		return false
	}

	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains returns true if the value is in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if len(s.sparse) > 0x7FFFFFFF {
		return false // len too large for safe conversion
	}
	//nolint:gosec // G115: len is checked above for safe conversion to uint32
	sparseLen := uint32(len(s.sparse))
	if value >= sparseLen {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Remove removes a value from the set.
// If the value is not present, this is a no-op.
func (s *SparseSet) Remove(value uint32) {
	if !s.Contains(value) {
		return
	}

	idx := s.sparse[value]

	lastValue := s.dense[s.size-1]
	s.dense[idx] = lastValue
	s.sparse[lastValue] = idx

	s.size--
	s.dense = s.dense[:s.size]
}

// Clear removes all elements from the set in O(1) time.
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements in the set.
func (s *SparseSet) Len() int {
	return int(s.size)
}

// Size is an alias for Len, kept for callers that prefer that name.
func (s *SparseSet) Size() int {
	return s.Len()
}

// IsEmpty returns true if the set contains no elements.
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}

// Capacity returns the maximum value (exclusive) the set can store.
func (s *SparseSet) Capacity() int {
	return len(s.sparse)
}

// Resize changes the set's capacity. Growing preserves existing elements;
// shrinking or resizing to the same capacity clears the set, since the
// sparse array can no longer be trusted to reflect the new bounds cheaply.
// A newCapacity of 0 defaults to defaultCapacity.
func (s *SparseSet) Resize(newCapacity uint32) {
	if newCapacity == 0 {
		newCapacity = defaultCapacity
	}
	if int(newCapacity) <= len(s.sparse) {
		s.sparse = make([]uint32, newCapacity)
		s.Clear()
		return
	}

	grown := make([]uint32, newCapacity)
	copy(grown, s.sparse)
	s.sparse = grown
}

// Clone returns an independent copy of the set.
func (s *SparseSet) Clone() *SparseSet {
	out := &SparseSet{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense), cap(s.dense)),
		size:   s.size,
	}
	copy(out.sparse, s.sparse)
	copy(out.dense, s.dense)
	return out
}

// Values returns a slice of all values in the set, in insertion order
// unless a Remove has moved the last value into the removed value's slot.
// The returned slice is valid until the next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}

// Iter calls the given function for each value in the set, in the same
// order as Values.
func (s *SparseSet) Iter(f func(uint32)) {
	for i := uint32(0); i < s.size; i++ {
		f(s.dense[i])
	}
}

// MemoryUsage returns an estimate, in bytes, of the memory backing the set's
// two uint32 arrays at their current capacity.
func (s *SparseSet) MemoryUsage() int {
	return len(s.sparse)*4 + cap(s.dense)*4
}

// SparseSets bundles a pair of sparse sets that are swapped wholesale
// instead of reallocated. No production path in this module needs it — the
// closure driver in ast/closure.go works entirely on *bitset.Bitset — but it
// is kept to preserve the teacher package's tested API surface (see
// DESIGN.md) rather than trimmed down to only what flowregex currently
// calls.
type SparseSets struct {
	Set1 *SparseSet
	Set2 *SparseSet
}

// NewSparseSets creates a pair of sparse sets sharing the given capacity.
func NewSparseSets(capacity uint32) *SparseSets {
	return &SparseSets{
		Set1: NewSparseSet(capacity),
		Set2: NewSparseSet(capacity),
	}
}

// Swap exchanges Set1 and Set2 in place.
func (ss *SparseSets) Swap() {
	ss.Set1, ss.Set2 = ss.Set2, ss.Set1
}

// Resize resizes both sets to the same new capacity.
func (ss *SparseSets) Resize(newCapacity uint32) {
	ss.Set1.Resize(newCapacity)
	ss.Set2.Resize(newCapacity)
}

// Clear clears both sets.
func (ss *SparseSets) Clear() {
	ss.Set1.Clear()
	ss.Set2.Clear()
}

// MemoryUsage returns the combined memory estimate of both sets.
func (ss *SparseSets) MemoryUsage() int {
	return ss.Set1.MemoryUsage() + ss.Set2.MemoryUsage()
}
