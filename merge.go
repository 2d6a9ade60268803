package hashdb

// Merge - Adds every entry of src to T, keys already in T keep their values.
// The iteration uses src's cursor, which is reset before and after.
//
// Merge is not atomic: if it fails part way (ErrOutOfMemory or ErrCapacityExhausted while growing T),
// the entries copied so far stay in T and added tells how many there were.
//
// It returns:
//   - added is the number of keys that were not in T before
//   - err is nil or the error that stopped the merge
func (T *Table) Merge(src *Table) (added uint64, err error) {
	added, err = T.mergeWith(src, SkipIfPresent)
	err = opError("merge", nil, err)

	return
}

// Update - Same as Merge, but keys already in T get the value from src
func (T *Table) Update(src *Table) (added uint64, err error) {
	added, err = T.mergeWith(src, Overwrite)
	err = opError("update", nil, err)

	return
}

// mergeWith - Drains src's iterator and puts every entry into T using policy
func (T *Table) mergeWith(src *Table, policy Policy) (added uint64, err error) {
	if src == T {
		return
	}

	src.ResetIterator()
	defer src.ResetIterator()

	var isNew bool
	for {
		entry, ok := src.Next()
		if !ok {
			return
		}

		isNew, err = T.put(entry.Key, entry.Value, policy)
		if err != nil {
			return
		}
		if isNew {
			added++
		}
	}
}
