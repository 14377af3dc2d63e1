// Package hashing defines the Hashable capability and the 64-bit hash
// functions the containers use for their HashCode methods.
package hashing

import (
	"encoding/binary"
	"hash"
	"math"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc takes a Hashable object and returns its 64-bit digest.
// Xxh3 and XxHash64 are both HashFuncs.
type HashFunc func(hashable Hashable) (uint64, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. Implementations must feed equal
// objects into the hash identically.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Xxh3 returns the XXH3 64-bit digest of the given Hashable.
func Xxh3(hashable Hashable) (uint64, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// XxHash64 returns the XXH64 digest of the given Hashable.
func XxHash64(hashable Hashable) (uint64, error) {
	h := xxhash.New64()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// WriteInt feeds v into h as 8 little-endian bytes.
func WriteInt(h hash.Hash, v int) error {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(v)) //nolint:gosec

	_, err := h.Write(buf[:])

	return err
}

// WriteFloat64 feeds the IEEE 754 bits of v into h. Two floats hash
// identically exactly when their bit patterns match, which is the same
// notion of equality the float mappings use.
func WriteFloat64(h hash.Hash, v float64) error {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))

	_, err := h.Write(buf[:])

	return err
}
