package paillier

import (
	"math/big"
	"testing"
)

func TestSampleZStarN(t *testing.T) {
	rnd, err := newRNG()
	if err != nil {
		t.Fatalf("newRNG: %v", err)
	}
	n := big.NewInt(143)

	for i := 0; i < 50; i++ {
		c, err := sampleZStarN(n, rnd)
		if err != nil {
			t.Fatalf("sampleZStarN: %v", err)
		}
		if c.Sign() <= 0 || c.Cmp(n) >= 0 {
			t.Fatalf("sampleZStarN returned %v outside (0, %v)", c, n)
		}
		if new(big.Int).GCD(nil, nil, c, n).Cmp(one) != 0 {
			t.Fatalf("sampleZStarN returned %v, not coprime to %v", c, n)
		}
	}
}
