package hashdb

import (
	"math"

	"github.com/gostonefire/hashdb/internal/conf"
	"github.com/gostonefire/hashdb/internal/prime"
	"github.com/gostonefire/hashdb/internal/storage"
)

// capacityLimit - Returns the largest capacity that may be allocated given a configured max capacity.
// Without a configured limit it is the largest slot array that can be made at all.
func capacityLimit(maxCapacity uint64) uint64 {
	if maxCapacity != conf.UnlimitedCapacity && maxCapacity < storage.MaxCapacity {
		return maxCapacity
	}

	return storage.MaxCapacity
}

// allocate - Returns a new empty store with the given capacity, or ErrOutOfMemory if that is above the
// capacity limit
func (T *Table) allocate(capacity uint64) (store *storage.Store, err error) {
	if capacity > capacityLimit(T.maxCapacity) {
		err = ErrOutOfMemory
		return
	}

	store = storage.NewStore(capacity, T.hashFunction)
	return
}

// growDue - Returns true if one more entry would push the fill ratio above the high watermark
func (T *Table) growDue() bool {
	if T.fixed {
		return false
	}

	return float64(T.store.Occupied()+1)/float64(T.store.Capacity()) > conf.HighWatermark
}

// cleanupDue - Returns true if live entries and tombstones together would push the fill ratio above the
// high watermark with one more entry, and the tombstones make up more than the low watermark share of slots.
func (T *Table) cleanupDue() bool {
	capacity := float64(T.store.Capacity())
	if float64(T.store.Deleted()) <= capacity*conf.LowWatermark {
		return false
	}

	return float64(T.store.Occupied()+T.store.Deleted()+1)/capacity > conf.HighWatermark
}

// shrinkDue - Returns true if the fill ratio has dropped below the low watermark and there is room to shrink
func (T *Table) shrinkDue() bool {
	if T.fixed || T.store.Capacity() <= conf.DefaultCapacity {
		return false
	}

	return float64(T.store.Occupied())/float64(T.store.Capacity()) < conf.LowWatermark
}

// grow - Doubles the capacity (to the next prime congruent to 3 mod 4) if an insert would exceed the
// high watermark. If the table does not need to grow, or is fixed, but is crowded by tombstones, all
// entries are instead rehashed into a new slot array of the same capacity.
func (T *Table) grow() (err error) {
	if !T.growDue() {
		if T.cleanupDue() {
			err = T.realloc("cleanup", T.store.Capacity())
		}
		return
	}

	capacity := T.store.Capacity()
	if capacity > math.MaxUint64/conf.GrowthFactor {
		err = ErrCapacityExhausted
		T.logger.LogResize("grow", capacity, capacity, T.store.Occupied(), err)
		return
	}

	newCapacity := prime.Higher3Mod4(capacity * conf.GrowthFactor)
	if !prime.IsPrime(newCapacity) {
		err = ErrCapacityExhausted
		T.logger.LogResize("grow", capacity, newCapacity, T.store.Occupied(), err)
		return
	}

	err = T.realloc("grow", newCapacity)
	return
}

// shrink - Halves the capacity (to the next lower prime congruent to 3 mod 4, never below the default
// capacity) if the fill ratio is below the low watermark. Nothing changes if the table is fixed.
func (T *Table) shrink() (err error) {
	if !T.shrinkDue() {
		return
	}

	newCapacity := prime.Lower3Mod4(T.store.Capacity() / conf.ShrinkDivisor)
	if newCapacity < conf.DefaultCapacity || !prime.IsPrime(newCapacity) {
		newCapacity = conf.DefaultCapacity
	}

	err = T.realloc("shrink", newCapacity)
	return
}

// realloc - Rehashes all entries into a new slot array of newCapacity and swaps it in. The new capacity
// may equal the old one, which drops all tombstones.
// On failure the table keeps its old slot array, so the resize is all or nothing.
func (T *Table) realloc(reason string, newCapacity uint64) (err error) {
	oldCapacity := T.store.Capacity()
	count := T.store.Occupied()

	newStore, err := T.allocate(newCapacity)
	if err != nil {
		T.logger.LogResize(reason, oldCapacity, newCapacity, count, err)
		return
	}

	if !T.store.Rehash(newStore) {
		err = ErrCapacityExhausted
		T.logger.LogResize(reason, oldCapacity, newCapacity, count, err)
		return
	}

	T.store = newStore
	if T.cursor > newCapacity {
		T.cursor = newCapacity
	}

	T.logger.LogResize(reason, oldCapacity, newCapacity, count, nil)
	return
}
