package random

import (
	crand "crypto/rand"
	"fmt"
)

// entropySource holds no generator state: every draw reads fresh OS entropy,
// so draws carry no cross-call correlation.
type entropySource struct{}

// Float64 accumulates 7 entropy bytes with halving weight per byte,
// value = Σ byte_i / 256^(i+1), which stays strictly below 1.
func (entropySource) Float64() float64 {
	var buf [7]byte
	mustEntropy(buf[:])
	value := 0.0
	scale := 1.0 / 256
	for _, b := range buf {
		value += float64(b) * scale
		scale /= 256
	}
	return value
}

func (e entropySource) IntN(n int) int {
	if n <= 0 {
		panic("random: IntN called with n <= 0")
	}
	return int(e.Float64() * float64(n))
}

func (e entropySource) Range(min, max int) (int, error) {
	return rangeN(e, min, max)
}

// mustEntropy fills buf from the OS entropy pool. Failure means the platform
// randomness source is broken, which is not recoverable.
func mustEntropy(buf []byte) {
	if _, err := crand.Read(buf); err != nil {
		panic(fmt.Sprintf("random: reading OS entropy: %v", err))
	}
}
