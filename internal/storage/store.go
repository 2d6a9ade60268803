package storage

import (
	"math"
	"unsafe"

	"github.com/gostonefire/hashdb/hashfunc"
	"github.com/gostonefire/hashdb/internal/hash"
	"github.com/gostonefire/hashdb/internal/model"
	"github.com/gostonefire/hashdb/internal/utils"
)

// MaxCapacity - Largest number of slots a slot array can have before its size in bytes overflows int
const MaxCapacity = uint64(math.MaxInt) / uint64(unsafe.Sizeof(model.Slot{}))

// Store - Represents the bucket array of an open addressing table using the Quadratic Probing Collision
// Resolution Technique. Each bucket holds one slot. Deleted slots are kept as tombstones so that probe
// chains passing through them stay intact; they are reused by later inserts and dropped by a rehash.
type Store struct {
	slots        []model.Slot
	capacity     uint64
	hashFunction hashfunc.HashFunction
	nOccupied    uint64
	nDeleted     uint64
}

// NewStore - Returns a pointer to a new Store with capacity empty slots.
//   - capacity is the number of slots, it should be a prime congruent to 3 mod 4 for probing to reach every slot
//   - hashFunction is the hash function used to compute digests of keys
func NewStore(capacity uint64, hashFunction hashfunc.HashFunction) *Store {
	return &Store{
		slots:        make([]model.Slot, capacity),
		capacity:     capacity,
		hashFunction: hashFunction,
	}
}

// Capacity - Returns the number of slots
func (S *Store) Capacity() uint64 {
	return S.capacity
}

// Occupied - Returns the number of slots in use
func (S *Store) Occupied() uint64 {
	return S.nOccupied
}

// Deleted - Returns the number of tombstones
func (S *Store) Deleted() uint64 {
	return S.nDeleted
}

// Empty - Returns the number of slots that have never been used since the last clear or rehash
func (S *Store) Empty() uint64 {
	return S.capacity - S.nOccupied - S.nDeleted
}

// Slot - Returns a copy of the slot at index
func (S *Store) Slot(index uint64) model.Slot {
	return S.slots[index]
}

// MemoryUsage - Returns the size in bytes of the slot array, not counting keys and values it refers to
func (S *Store) MemoryUsage() uint64 {
	return S.capacity * uint64(unsafe.Sizeof(model.Slot{}))
}

// Digest - Returns the digest of key given the store's hash function
func (S *Store) Digest(key []byte) uint64 {
	digest, _ := hashfunc.Digest(S.hashFunction, key, len(key))
	return digest
}

// ProbeForGet - Is the Quadratic Probing Collision Resolution Technique algorithm for finding a key.
// Probing stops at the matching slot or at the first empty slot, tombstones are passed over.
// If no match is found, Found is false.
func (S *Store) ProbeForGet(key []byte) (probe model.Probe) {
	digest := S.Digest(key)

	for i := uint64(1); i <= hash.Attempts(S.capacity); i++ {
		index := hash.QuadraticProbe(digest, i, S.capacity)
		slot := &S.slots[index]

		switch slot.State {
		case model.SlotEmpty:
			probe = model.Probe{Index: index, Attempts: i}
			return

		case model.SlotOccupied:
			if utils.IsEqual(key, slot.Key) {
				probe = model.Probe{Index: index, Found: true, Attempts: i}
				return
			}
		}
	}

	// All slots are occupied or tombstones and none matched
	probe = model.Probe{Attempts: hash.Attempts(S.capacity)}
	return
}

// ProbeForSet - Is the Quadratic Probing Collision Resolution Technique algorithm for getting a slot for set.
// If the key exists, the returned probe has Found set and points at it. Otherwise it points at the first
// tombstone passed on the way, or else the empty slot that ended the chain.
// It returns ok as false if the key does not exist and there is no free slot to put it in.
func (S *Store) ProbeForSet(key []byte) (probe model.Probe, ok bool) {
	digest := S.Digest(key)

	var deletedProbe model.Probe
	var hasCached bool

	for i := uint64(1); i <= hash.Attempts(S.capacity); i++ {
		index := hash.QuadraticProbe(digest, i, S.capacity)
		slot := &S.slots[index]

		switch slot.State {
		case model.SlotEmpty:
			if hasCached {
				return deletedProbe, true
			}
			return model.Probe{Index: index, Attempts: i}, true

		case model.SlotOccupied:
			if utils.IsEqual(key, slot.Key) {
				return model.Probe{Index: index, Found: true, Attempts: i}, true
			}

		case model.SlotDeleted:
			if !hasCached {
				deletedProbe = model.Probe{Index: index, Attempts: i}
				hasCached = true
			}
		}
	}

	if hasCached {
		return deletedProbe, true
	}

	return
}

// Set - Writes key and value into the slot at index and marks it occupied
func (S *Store) Set(index uint64, key []byte, value any) {
	slot := &S.slots[index]
	S.updateUtilizationInfo(slot.State, model.SlotOccupied)

	slot.State = model.SlotOccupied
	slot.Key = key
	slot.Value = value
}

// Delete - Turns the occupied slot at index into a tombstone and returns the value it held
func (S *Store) Delete(index uint64) (value any) {
	slot := &S.slots[index]
	if slot.State != model.SlotOccupied {
		return
	}

	value = slot.Value
	S.updateUtilizationInfo(slot.State, model.SlotDeleted)

	slot.State = model.SlotDeleted
	slot.Key = nil
	slot.Value = nil

	return
}

// Clear - Empties every slot, capacity stays the same
func (S *Store) Clear() {
	clear(S.slots)
	S.nOccupied = 0
	S.nDeleted = 0
}

// NextOccupied - Returns the index of the first occupied slot at or after from.
// It returns ok as false if there is none.
func (S *Store) NextOccupied(from uint64) (index uint64, ok bool) {
	for i := from; i < S.capacity; i++ {
		if S.slots[i].InUse() {
			return i, true
		}
	}

	return
}

// Rehash - Places every occupied slot of S into to, using to's capacity for probing.
// Tombstones are not carried over. It returns false if some entry could not be placed, in which case
// to is in an undefined state and should be discarded, S is never changed.
func (S *Store) Rehash(to *Store) bool {
	for i := range S.slots {
		slot := &S.slots[i]
		if !slot.InUse() {
			continue
		}

		probe, ok := to.ProbeForSet(slot.Key)
		if !ok || probe.Found {
			return false
		}
		to.Set(probe.Index, slot.Key, slot.Value)
	}

	return true
}

// updateUtilizationInfo - Updates counters of occupied and deleted slots given a state change
func (S *Store) updateUtilizationInfo(fromState, toState uint8) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.SlotOccupied:
		S.nOccupied--
	case model.SlotDeleted:
		S.nDeleted--
	}

	switch toState {
	case model.SlotOccupied:
		S.nOccupied++
	case model.SlotDeleted:
		S.nDeleted++
	}
}
