package maze

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	seedLength   = 15
	seedAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// RNG is the deterministic random stream of a single generation run.
type RNG struct {
	seed   string
	hi, lo uint64
	src    *mrand.PCG
	r      *mrand.Rand
}

// NewRNG seeds a PCG stream from the BLAKE2b digest of seed.
func NewRNG(seed string) *RNG {
	sum := blake2b.Sum256([]byte(seed))
	hi := binary.LittleEndian.Uint64(sum[0:8])
	lo := binary.LittleEndian.Uint64(sum[8:16])
	src := mrand.NewPCG(hi, lo)
	return &RNG{seed: seed, hi: hi, lo: lo, src: src, r: mrand.New(src)}
}

// Derive returns the stream keyed by this stream's seed and the pair (a, b).
// Derived streams are independent of how much of r has been consumed. When
// dst is not nil it is reseeded and returned instead of allocating.
func (r *RNG) Derive(dst *RNG, a, b int) *RNG {
	if dst == nil {
		src := mrand.NewPCG(0, 0)
		dst = &RNG{src: src, r: mrand.New(src)}
	}

	dst.seed = r.seed
	dst.hi = mix64(r.hi + uint64(a)*0x9e3779b97f4a7c15)
	dst.lo = mix64(r.lo ^ mix64(uint64(b)+0xd1b54a32d192ed03))
	dst.src.Seed(dst.hi, dst.lo)
	return dst
}

// mix64 is the splitmix64 finalizer.
func mix64(z uint64) uint64 {
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	return z ^ z>>31
}

// Seed returns the seed the stream was created from.
func (r *RNG) Seed() string { return r.seed }

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a value in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool { return r.r.Float64() < p }

// NewSeed builds a 15 character alphanumeric seed with random casing. A nil
// src draws from a ChaCha8 source keyed by the operating system.
func NewSeed(src mrand.Source) string {
	if src == nil {
		var key [32]byte
		_, _ = rand.Read(key[:])
		src = mrand.NewChaCha8(key)
	}
	r := mrand.New(src)

	var seed strings.Builder
	seed.Grow(seedLength)
	for range seedLength {
		upper := r.Float64() < 0.5
		c := seedAlphabet[r.IntN(len(seedAlphabet))]
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		seed.WriteByte(c)
	}
	return seed.String()
}
