package paillier

import "math/big"

var zero = big.NewInt(0)
var one = big.NewInt(1)

// sampleZStarN draws a uniform element of Z*_n by rejection sampling:
// repeatedly drawing a candidate in [0, n) until it is coprime to n. This is
// the rejection-sampling routine the re-randomization helper is built on, per
// the randomness factoring design note. The generator-synthesis loop in
// Keygen does not use it: it draws its own candidates with uniformBelow and
// tests them with inZStar plus its order condition.
func sampleZStarN(n *big.Int, r *rng) (*big.Int, error) {
	for {
		c, err := r.uniformBelow(n)
		if err != nil {
			return nil, err
		}
		if c.Sign() == 0 {
			continue
		}
		if inZStar(c, n) {
			return c, nil
		}
	}
}
