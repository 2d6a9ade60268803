package model

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was deleted (a tombstone)
const SlotDeleted uint8 = 2

// Slot - Represents one position in the bucket array.
// Key and Value are borrowed from the caller, the table never copies or releases them.
type Slot struct {
	State uint8
	Key   []byte
	Value any
}

// InUse - Returns true if the slot holds a live entry
func (S Slot) InUse() bool {
	return S.State == SlotOccupied
}

// Probe - Is the result of a probe through the bucket array for a key
//   - Index is the slot that matched the key, or the slot where the key can be placed
//   - Found is true if Index holds an occupied slot with an equal key
//   - Attempts is the number of probe attempts used
type Probe struct {
	Index    uint64
	Found    bool
	Attempts uint64
}
