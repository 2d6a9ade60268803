package hashdb

// Entry - Is one key and value pair returned by Next
type Entry struct {
	Key   []byte
	Value any
}

// Next - Returns the next entry in storage order and moves the table's cursor past it.
// When there are no more entries the cursor is reset and ok is false, so the following call starts over
// from the first entry again.
//
// There is a single cursor per table. Interleaved iterations over the same table share it, and inserts,
// deletes or resizes during an iteration give undefined ordering (entries may be skipped or repeated),
// but Next never fails.
func (T *Table) Next() (entry Entry, ok bool) {
	if T.cursor >= T.store.Capacity() {
		T.cursor = 0
		return
	}

	index, ok := T.store.NextOccupied(T.cursor)
	if !ok {
		T.cursor = 0
		return
	}

	slot := T.store.Slot(index)
	entry = Entry{Key: slot.Key, Value: slot.Value}
	T.cursor = index + 1

	return
}

// ResetIterator - Moves the cursor back to the start of the table
func (T *Table) ResetIterator() {
	T.cursor = 0
}

// each - Calls fn for every entry in storage order until fn returns false. It does not use or move the
// cursor, fn must not modify the table.
func (T *Table) each(fn func(key []byte, value any) bool) {
	for from := uint64(0); ; {
		index, ok := T.store.NextOccupied(from)
		if !ok {
			return
		}

		slot := T.store.Slot(index)
		if !fn(slot.Key, slot.Value) {
			return
		}
		from = index + 1
	}
}
