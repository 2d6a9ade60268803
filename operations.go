package hashdb

import (
	"github.com/gostonefire/hashdb/internal/conf"
	"github.com/gostonefire/hashdb/internal/prime"
)

// Policy - Decides what an insert does when the key is already in the table
type Policy int

const (
	// FailOnDuplicate - The insert fails with ErrDuplicateKey
	FailOnDuplicate Policy = iota
	// SkipIfPresent - The insert does nothing and the stored value is kept
	SkipIfPresent
	// Overwrite - The stored key reference and value are replaced
	Overwrite
)

// Put - Inserts key with value, resolving an existing equal key according to policy.
// The key slice and value are stored as given, see Table about borrowed references.
//   - key is the identifier of the entry, two keys are equal if they have equal length and bytes
//   - value is any value to associate with the key
//   - policy decides what happens if key is already in the table
//
// It returns:
//   - added is true if key was not in the table before
//   - err is nil, or wraps ErrDuplicateKey, ErrCapacityExhausted or ErrOutOfMemory
func (T *Table) Put(key []byte, value any, policy Policy) (added bool, err error) {
	added, err = T.put(key, value, policy)
	err = opError("put", key, err)

	return
}

// Add - Inserts key with value, it fails with ErrDuplicateKey if key is already in the table
func (T *Table) Add(key []byte, value any) (err error) {
	_, err = T.put(key, value, FailOnDuplicate)
	err = opError("add", key, err)

	return
}

// AddIfAbsent - Inserts key with value unless key is already in the table, in which case the stored
// value is kept and added is false
func (T *Table) AddIfAbsent(key []byte, value any) (added bool, err error) {
	added, err = T.put(key, value, SkipIfPresent)
	err = opError("add", key, err)

	return
}

// Set - Inserts key with value, or replaces the value if key is already in the table
func (T *Table) Set(key []byte, value any) (err error) {
	_, err = T.put(key, value, Overwrite)
	err = opError("set", key, err)

	return
}

// Get - Gets the value that corresponds to the given key.
//
// It returns:
//   - value is the value of the matching entry
//   - err is nil or, if key is not in the table, wraps ErrNoRecordFound
func (T *Table) Get(key []byte) (value any, err error) {
	probe := T.store.ProbeForGet(key)
	if !probe.Found {
		err = opError("get", key, ErrNoRecordFound)
		return
	}

	value = T.store.Slot(probe.Index).Value

	return
}

// Has - Returns true if key is in the table
func (T *Table) Has(key []byte) bool {
	return T.store.ProbeForGet(key).Found
}

// Delete - Removes the entry for key and returns its value. Afterwards the table shrinks if it has
// become sparse enough. A failed shrink does not undo the delete, it is only logged.
//
// It returns:
//   - value is the value of the removed entry
//   - err is nil or, if key is not in the table, wraps ErrNoRecordFound
func (T *Table) Delete(key []byte) (value any, err error) {
	probe := T.store.ProbeForGet(key)
	if !probe.Found {
		err = opError("delete", key, ErrNoRecordFound)
		return
	}

	value = T.store.Delete(probe.Index)

	// shrink logs its own failures and the table is consistent either way
	_ = T.shrink()

	return
}

// Clear - Removes all entries but keeps the capacity
func (T *Table) Clear() {
	T.store.Clear()
	T.cursor = 0
}

// Reset - Removes all entries and returns the table to the default capacity with a newly allocated slot
// array. On failure the table is left as it was. The fixed flag is not changed.
func (T *Table) Reset() (err error) {
	store, err := T.allocate(conf.DefaultCapacity)
	if err != nil {
		err = opError("reset", nil, err)
		return
	}

	T.store = store
	T.cursor = 0

	return
}

// EnsureCapacity - Makes sure the table has at least the next prime (congruent to 3 mod 4) at or above n
// slots, growing it if needed. This works even when the table is fixed. The table never shrinks here.
// A request above the max capacity, or above what can be allocated at all, fails with ErrOutOfMemory and
// leaves the table as it was.
func (T *Table) EnsureCapacity(n uint64) (err error) {
	err = opError("ensure capacity", nil, T.ensureCapacity(n))
	return
}

// EnsureCapacityAndFix - Same as EnsureCapacity, and on success also fixes the capacity
func (T *Table) EnsureCapacityAndFix(n uint64) (err error) {
	err = T.ensureCapacity(n)
	if err != nil {
		err = opError("ensure capacity", nil, err)
		return
	}

	T.fixed = true

	return
}

// Fix - Sets whether the capacity is fixed. A fixed table never grows or shrinks by itself, inserts into
// a full fixed table fail with ErrCapacityExhausted.
func (T *Table) Fix(fixed bool) {
	T.fixed = fixed
}

// put - Grows the table if due and then inserts according to policy
func (T *Table) put(key []byte, value any, policy Policy) (added bool, err error) {
	err = T.grow()
	if err != nil {
		return
	}

	probe, ok := T.store.ProbeForSet(key)
	if !ok {
		err = ErrCapacityExhausted
		return
	}

	if probe.Found {
		switch policy {
		case FailOnDuplicate:
			err = ErrDuplicateKey
		case Overwrite:
			T.store.Set(probe.Index, key, value)
		}
		return
	}

	T.store.Set(probe.Index, key, value)
	added = true

	return
}

// ensureCapacity - Grows the table to the next prime congruent to 3 mod 4 at or above n, if bigger
func (T *Table) ensureCapacity(n uint64) (err error) {
	if n > capacityLimit(T.maxCapacity) {
		err = ErrOutOfMemory
		return
	}

	newCapacity := prime.Higher3Mod4(n)
	if !prime.IsPrime(newCapacity) {
		err = ErrCapacityExhausted
		return
	}

	if newCapacity <= T.store.Capacity() {
		return
	}

	err = T.realloc("ensure", newCapacity)
	return
}
