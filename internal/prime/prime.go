package prime

import "math"

// Direction - Step used when searching for the next prime, always an even number since all primes above 2 are odd
type Direction int64

const (
	// Up - Searches towards higher numbers
	Up Direction = 2
	// Down - Searches towards lower numbers
	Down Direction = -2
)

// IsPrime - Returns true if n is a prime number.
// Trial division by odd numbers up to the square root of n, 2 is the only even prime.
func IsPrime(n uint64) bool {
	if n&1 == 0 {
		return n == 2
	}

	for divisor := uint64(3); divisor <= n/divisor; divisor += 2 {
		if n%divisor == 0 {
			return false
		}
	}

	return n > 1
}

// Next3Mod4 - Returns the first prime congruent to 3 mod 4 found when starting at n rounded up to odd and
// stepping in the given direction. If the search runs out of representable numbers before such a prime is
// found, n is returned unchanged and the caller must treat that as no prime found (check with IsPrime).
// Quadratic probing with alternating signs visits every slot of a table whose size is such a prime.
func Next3Mod4(n uint64, direction Direction) uint64 {
	return search(n, direction, func(i uint64) bool {
		return i&3 == 3 && IsPrime(i)
	})
}

// Higher3Mod4 - Returns the next prime congruent to 3 mod 4 at or above n (n rounded up to odd)
func Higher3Mod4(n uint64) uint64 {
	return Next3Mod4(n, Up)
}

// Lower3Mod4 - Returns the next prime congruent to 3 mod 4 at or below n (n rounded up to odd)
func Lower3Mod4(n uint64) uint64 {
	return Next3Mod4(n, Down)
}

// search - Steps from n|1 in direction until accept returns true or the range is exhausted
func search(n uint64, direction Direction, accept func(uint64) bool) uint64 {
	step := uint64(direction)
	if direction < 0 {
		step = uint64(-direction)
	}
	if step == 0 {
		return n
	}

	for i := n | 1; ; {
		if accept(i) {
			return i
		}

		if direction > 0 {
			if i > math.MaxUint64-step {
				return n
			}
			i += step
		} else {
			if i < 3 || i-step < 1 {
				return n
			}
			i -= step
		}
	}
}
