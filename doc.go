/*
Package hashdb provides an in-memory hash table mapping byte keys to values of any type.

The table uses open addressing with quadratic probing, where the offset of attempt i is i*i, subtracted
on odd attempts and added on even ones. Capacities are always primes congruent to 3 mod 4, for which
this probe sequence visits every slot, so an insert only fails when the table really is full.

Basic usage:

	import "github.com/gostonefire/hashdb"

	table, err := hashdb.New()
	if err != nil {
		log.Fatal(err)
	}

	err = table.Add(hashdb.StringKey("answer"), 42)

	value, err := table.Get(hashdb.StringKey("answer"))
	if errors.Is(err, hashdb.ErrNoRecordFound) {
		// not there
	}

Features:

  - Keys and values are stored by reference, nothing is copied on insert
  - Three insert variants: Add fails on duplicates, AddIfAbsent keeps the stored value, Set overwrites
  - Grows above a fill ratio of 0.5 and shrinks below 0.125
  - Fixed capacity mode where inserts into a full table fail instead of growing
  - Deletes leave tombstones, so other keys on the same probe path stay reachable; they are rehashed
    away once they crowd out the empty slots
  - A restartable iterator embedded in the table, plus Merge and Update between tables
  - Pluggable hash functions, by default FNV-1a and djb2 summed together

A table is not safe for concurrent use.
*/
package hashdb
