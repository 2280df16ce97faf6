package visited

// Set tracks enqueued record ids using a bitset and a dirty list for fast
// reset between cluster expansions.
type Set struct {
	bits  []uint64
	dirty []uint32
}

// New creates a set sized for the given number of records.
func New(capacity int) *Set {
	// bits needed = (capacity + 63) / 64
	return &Set{
		bits:  make([]uint64, (capacity+63)/64),
		dirty: make([]uint32, 0, 128), // Initial capacity for dirty list
	}
}

// Add marks an id and reports whether it was newly added. The set grows as
// needed for ids beyond the initial capacity.
func (s *Set) Add(id uint32) bool {
	wordIdx := int(id >> 6)
	bitMask := uint64(1) << (id & 63)

	if wordIdx >= len(s.bits) {
		s.grow(wordIdx + 1)
	}

	if s.bits[wordIdx]&bitMask != 0 {
		return false
	}

	s.bits[wordIdx] |= bitMask
	s.dirty = append(s.dirty, id)

	return true
}

// Contains returns true if the id has been added since the last reset.
func (s *Set) Contains(id uint32) bool {
	wordIdx := int(id >> 6)
	if wordIdx >= len(s.bits) {
		return false
	}
	return s.bits[wordIdx]&(uint64(1)<<(id&63)) != 0
}

// Reset clears only the ids added since the last reset.
func (s *Set) Reset() {
	for _, id := range s.dirty {
		s.bits[id>>6] &^= uint64(1) << (id & 63)
	}
	s.dirty = s.dirty[:0]
}

func (s *Set) grow(newLen int) {
	newCap := len(s.bits) * 2
	if newCap < newLen {
		newCap = newLen
	}

	newBits := make([]uint64, newCap)
	copy(newBits, s.bits)
	s.bits = newBits
}
