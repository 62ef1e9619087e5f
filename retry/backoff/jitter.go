package backoff

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"time"
)

// Source supplies entropy for jittered delays. Float64 must return a value
// in [0.0, 1.0). *math/rand/v2.Rand satisfies Source, so tests can inject a
// generator with a fixed seed and assert exact jittered values.
type Source interface {
	Float64() float64
}

// newDefaultSource returns a PCG generator seeded from crypto/rand, falling
// back to a time-based seed if the system entropy pool is unavailable.
// Each sequence gets its own source, so no locking is needed.
func newDefaultSource() Source {
	var seed [16]byte

	if _, err := rand.Read(seed[:]); err != nil {
		now := uint64(time.Now().UnixNano())

		return mrand.New(mrand.NewPCG(now, now<<32|now>>32)) // #nosec G404 -- fallback when crypto/rand fails
	}

	return mrand.New(mrand.NewPCG(
		binary.LittleEndian.Uint64(seed[:8]),
		binary.LittleEndian.Uint64(seed[8:]),
	)) // #nosec G404 -- seeded from crypto/rand
}

// resolveSource picks the sequence's entropy source at Build time.
// A nil result means jitter is disabled.
func resolveSource(jitter bool, src Source) Source {
	if !jitter {
		return nil
	}

	if src != nil {
		return src
	}

	return newDefaultSource()
}

// applyJitter returns a uniformly random duration in [0, delay].
func applyJitter(src Source, delay time.Duration) time.Duration {
	if delay <= 0 {
		return 0
	}

	return time.Duration(src.Float64() * float64(delay))
}
