package rng

import (
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/zeebo/blake3"
)

const defaultContext = "char-remapper 2021 seed"

// Seed derives a stable int64 from key.
func Seed(key string) int64 {
	hasher := blake3.NewDeriveKey(defaultContext)
	_, _ = hasher.Write([]byte(key))

	sum := make([]byte, 8)
	_, err := hasher.Digest().Read(sum)
	if err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(sum))
}

// New returns a generator owned by the caller. The same non-empty key
// always gives the same sequence; an empty key seeds from the clock.
func New(key string) *rand.Rand {
	if key == "" {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(Seed(key)))
}
