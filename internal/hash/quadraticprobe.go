package hash

import "math/bits"

// QuadraticProbe - Implements quadratic probing with alternating signs.
// For attempt i the offset i*i is subtracted from the digest if i is odd and added if i is even, and the
// result is reduced modulo capacity without ever going negative or overflowing.
//
// Callers iterate attempts 1 to capacity (inclusive). Attempt 0 would repeat the home slot that attempt
// capacity already yields. When capacity is a prime p with p mod 4 == 3 the attempts visit every slot:
// attempts i and p-i have the same square but opposite parity, so both +i*i and -i*i are produced, and
// since -1 is a quadratic non-residue for such p, the quadratic residues and their negations cover all
// non-zero offsets. For other capacities coverage is partial.
func QuadraticProbe(digest, attempt, capacity uint64) uint64 {
	home := digest % capacity
	a := attempt % capacity
	hi, lo := bits.Mul64(a, a)
	offset := bits.Rem64(hi, lo, capacity)

	if attempt&1 == 1 {
		if home >= offset {
			return home - offset
		}
		return home + (capacity - offset)
	}

	if offset >= capacity-home {
		return offset - (capacity - home)
	}
	return home + offset
}

// Attempts - Returns the number of attempts a full probe sequence uses for the given capacity
func Attempts(capacity uint64) uint64 {
	return capacity
}
