package hashdb

import (
	"github.com/gostonefire/hashdb/hashfunc"
	"github.com/gostonefire/hashdb/internal/conf"
	"github.com/gostonefire/hashdb/internal/prime"
	"github.com/gostonefire/hashdb/internal/storage"
	"github.com/gostonefire/hashdb/internal/utils"
)

// Table - The main implementation struct, an in-memory hash table using open addressing with quadratic
// probing over a prime number of slots.
//
// Keys and values are borrowed: the table stores the key slice and the value as given, without copying.
// The caller must not modify a key slice while it is stored in the table, and is responsible for the
// lifetime of whatever a value refers to. The table never modifies or releases caller memory.
//
// A Table is not safe for concurrent use, wrap it with a mutex if it is shared between goroutines.
type Table struct {
	store        *storage.Store
	hashFunction hashfunc.HashFunction
	fixed        bool
	cursor       uint64
	maxCapacity  uint64
	logger       *Logger
}

// New - Returns a pointer to a new empty Table.
//   - opts are optional settings, see WithHashFunction, WithInitialCapacity, WithMaxCapacity and WithLogger
//
// It returns:
//   - table is a pointer to the created Table
//   - err is ErrOutOfMemory if the initial or default capacity is above the max capacity or above what can be
//     allocated at all, else nil
func New(opts ...Option) (table *Table, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	limit := capacityLimit(o.maxCapacity)
	if limit < conf.DefaultCapacity || o.initialCapacity > limit {
		err = opError("new", nil, ErrOutOfMemory)
		return
	}

	capacity := conf.DefaultCapacity
	if o.initialCapacity > capacity {
		capacity = prime.Higher3Mod4(o.initialCapacity)
		if !prime.IsPrime(capacity) {
			err = opError("new", nil, ErrCapacityExhausted)
			return
		}
	}

	table = &Table{
		hashFunction: o.hashFunction,
		maxCapacity:  o.maxCapacity,
		logger:       o.logger,
	}

	table.store, err = table.allocate(capacity)
	if err != nil {
		table = nil
		err = opError("new", nil, err)
		return
	}

	return
}

// Cap - Returns the current number of slots
func (T *Table) Cap() uint64 {
	return T.store.Capacity()
}

// Len - Returns the number of entries in the table
func (T *Table) Len() uint64 {
	return T.store.Occupied()
}

// Percentage - Returns the fill ratio of the table as a percentage, entries per slot times 100
func (T *Table) Percentage() float64 {
	return float64(T.store.Occupied()) / float64(T.store.Capacity()) * 100
}

// MemoryUsage - Returns the size in bytes of the slot array. Keys and values are owned by the caller and
// not included.
func (T *Table) MemoryUsage() uint64 {
	return T.store.MemoryUsage()
}

// IsFixed - Returns true if automatic resizing is disabled
func (T *Table) IsFixed() bool {
	return T.fixed
}

// StringKey - Returns s as a key without copying it. Strings are immutable, so such a key is always safe
// to keep in the table.
func StringKey(s string) []byte {
	return utils.S2b(s)
}

// CString - Returns the key held in a NUL-terminated buffer, that is buf up to its first zero byte.
// The result shares memory with buf.
func CString(buf []byte) []byte {
	return hashfunc.Terminated(buf)
}
