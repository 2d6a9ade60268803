package hashfunc

// HashFunction - Interface that permits a table user to supply a custom hash function suited for its
// particular distribution of keys. The function is selected when the table is created and is used for
// every insert, lookup, delete and rehash of that table.
type HashFunction interface {
	// Sum64 - Returns a 64-bit digest of the key.
	// The digest does not have to be in any range, the table reduces it modulo its capacity while probing.
	Sum64(key []byte) uint64
}

// Func - Adapter to allow the use of ordinary functions as HashFunction
type Func func(key []byte) uint64

// Sum64 - Calls f(key)
func (f Func) Sum64(key []byte) uint64 {
	return f(key)
}

// Default - Returns the hash function used when none is given, FNV-1a and djb2 combined by double hashing
func Default() HashFunction {
	return Double{Primary: FNV1a{}, Secondary: DJB2{}}
}

// Digest - Hashes key using h and returns the digest together with the key length that was hashed.
// If length is 0 the key is treated as NUL-terminated text and the length is computed as the
// position of the first zero byte (or len(key) if there is none). A length larger than len(key) is
// clamped to len(key). This lets one code path serve both text and fixed size binary keys.
func Digest(h HashFunction, key []byte, length int) (digest uint64, n int) {
	switch {
	case length == 0:
		n = terminatedLength(key)
	case length > len(key) || length < 0:
		n = len(key)
	default:
		n = length
	}

	digest = h.Sum64(key[:n])
	return
}

// Terminated - Returns buf up to, but not including, its first zero byte
func Terminated(buf []byte) []byte {
	return buf[:terminatedLength(buf)]
}

// terminatedLength - Returns the index of the first zero byte in buf, or len(buf) if none
func terminatedLength(buf []byte) int {
	for i, b := range buf {
		if b == 0 {
			return i
		}
	}

	return len(buf)
}
