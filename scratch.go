package paillier

import "math/big"

// scratch is a scoped arena for big-integer temporaries that hold secret
// material during a single operation (pmin1, qmin1, msubp, msubq, ...).
// Functions that derive several secret intermediates (decryptToBigInt and
// the key generator's CRT-helper step) create one with newScratch, defer its
// zero method, and hand out or adopt temporaries through new/track instead of
// allocating big.Int values directly; functions holding only one or two
// secret temporaries (m, r, rho) clear those directly. This
// replaces the cleanup-chain-with-shared-scratch-arena pattern of the
// crypto core this package descends from: the arena is a plain value
// released on every exit path, including error paths.
type scratch struct {
	vals []*big.Int
}

func newScratch() *scratch {
	return &scratch{}
}

// new returns a fresh, zero-valued temporary owned by this arena.
func (s *scratch) new() *big.Int {
	v := new(big.Int)
	s.vals = append(s.vals, v)
	return v
}

// track adopts an existing *big.Int into the arena so it gets zeroized when
// the arena is released, without copying it.
func (s *scratch) track(v *big.Int) *big.Int {
	s.vals = append(s.vals, v)
	return v
}

// zero clears every temporary this arena has handed out. It is idempotent
// and safe to call multiple times (e.g. once explicitly and once via defer).
func (s *scratch) zero() {
	for _, v := range s.vals {
		if v != nil {
			v.SetInt64(0)
		}
	}
	s.vals = nil
}
