package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// fnvOffset - FNV-1a 64-bit offset basis
const fnvOffset uint64 = 0xcbf29ce484222325

// fnvPrime - FNV-1a 64-bit prime
const fnvPrime uint64 = 0x100000001b3

// djb2Offset - Initial accumulator of the djb2 string hash
const djb2Offset uint64 = 5381

// FNV1a - 64-bit FNV-1a, the primary hash function.
// Each byte is XOR:ed into the accumulator which is then multiplied by the FNV prime.
type FNV1a struct{}

// Sum64 - Returns the FNV-1a digest of key
func (FNV1a) Sum64(key []byte) uint64 {
	h := fnvOffset
	for _, b := range key {
		h ^= uint64(b)
		h *= fnvPrime
	}

	return h
}

// DJB2 - Bernstein's multiplicative string hash, used as secondary hash function in Double
type DJB2 struct{}

// Sum64 - Returns the djb2 digest of key, accumulator*33 + byte for each byte
func (DJB2) Sum64(key []byte) uint64 {
	h := djb2Offset
	for _, b := range key {
		h = (h << 5) + h + uint64(b)
	}

	return h
}

// Double - Combines two independent hash functions by summing their digests, which diversifies
// probe sequences for keys that collide in one of them. With a nil Secondary only Primary is used.
type Double struct {
	Primary   HashFunction
	Secondary HashFunction
}

// Sum64 - Returns Primary(key) + Secondary(key), wrapping on overflow
func (D Double) Sum64(key []byte) uint64 {
	if D.Secondary == nil {
		return D.Primary.Sum64(key)
	}

	return D.Primary.Sum64(key) + D.Secondary.Sum64(key)
}

// XXHash - 64-bit xxHash
type XXHash struct{}

// Sum64 - Returns the xxHash digest of key
func (XXHash) Sum64(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// XXH3 - 64-bit XXH3
type XXH3 struct{}

// Sum64 - Returns the XXH3 digest of key
func (XXH3) Sum64(key []byte) uint64 {
	return xxh3.Hash(key)
}

// ByName - Returns the hash function registered under name, and false if there is none.
// Known names are "double", "fnv", "djb2", "xxhash" and "xxh3".
func ByName(name string) (h HashFunction, ok bool) {
	ok = true
	switch name {
	case "double", "":
		h = Default()
	case "fnv":
		h = FNV1a{}
	case "djb2":
		h = DJB2{}
	case "xxhash":
		h = XXHash{}
	case "xxh3":
		h = XXH3{}
	default:
		ok = false
	}

	return
}
