package hashdb

// TableStat - Statistics on the usage of the slot array and the probe lengths of stored keys
//   - Records is the number of entries stored
//   - Tombstones is the number of slots left by deletes that have not been reused or rehashed away
//   - Empty is the number of slots never used since the last clear or rehash
//   - Capacity is the total number of slots
//   - FillPercentage is Records per Capacity times 100
//   - AverageProbeLength is the mean number of probe attempts needed to find a stored key
//   - MaxProbeLength is the largest number of probe attempts needed to find a stored key
//   - ProbeDistribution is the probe length of the entry in each slot (0 for free slots), only if asked for
type TableStat struct {
	Records            uint64
	Tombstones         uint64
	Empty              uint64
	Capacity           uint64
	FillPercentage     float64
	AverageProbeLength float64
	MaxProbeLength     uint64
	ProbeDistribution  []uint64
}

// Stat - Walks through the entire slot array and produces a TableStat.
// Every stored key is probed for, so this costs about as much as looking up every key once.
//   - includeDistribution set to true will include a slice of length Capacity with the probe length per slot, false will set TableStat.ProbeDistribution to nil.
func (T *Table) Stat(includeDistribution bool) (tableStat TableStat) {
	tableStat = TableStat{
		Records:        T.store.Occupied(),
		Tombstones:     T.store.Deleted(),
		Empty:          T.store.Empty(),
		Capacity:       T.store.Capacity(),
		FillPercentage: T.Percentage(),
	}

	if includeDistribution {
		tableStat.ProbeDistribution = make([]uint64, tableStat.Capacity)
	}

	var total uint64
	for from := uint64(0); ; {
		index, ok := T.store.NextOccupied(from)
		if !ok {
			break
		}

		attempts := T.store.ProbeForGet(T.store.Slot(index).Key).Attempts
		total += attempts
		if attempts > tableStat.MaxProbeLength {
			tableStat.MaxProbeLength = attempts
		}
		if includeDistribution {
			tableStat.ProbeDistribution[index] = attempts
		}
		from = index + 1
	}

	if tableStat.Records > 0 {
		tableStat.AverageProbeLength = float64(total) / float64(tableStat.Records)
	}

	return
}
