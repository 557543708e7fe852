package paillier

import "math/big"

// rerandomize multiplies c by a fresh r^n mod n^2 for r sampled uniformly
// from Z*_n, and returns the updated ciphertext. Enc, Touch and every
// homomorphic update in this package funnel their final randomization step
// through this single helper, per the randomness-factoring design note.
func rerandomize(pub *PubKey, c *big.Int, rnd *rng) (*big.Int, error) {
	r, err := sampleZStarN(pub.N, rnd)
	if err != nil {
		return nil, wrapError(CryptoError, "could not sample blinding factor", err)
	}
	rn := new(big.Int).Exp(r, pub.N, pub.NSquared)
	out := new(big.Int).Mul(c, rn)
	out.Mod(out, pub.NSquared)
	r.SetInt64(0)
	rn.SetInt64(0)
	return out, nil
}

// Enc encrypts m under pub, returning a freshly re-randomized counter. m
// must satisfy 0 <= m < n.
func Enc(pub *PubKey, m *big.Int) (*Counter, error) {
	return encWith(pub, m, nil)
}

// encWith is Enc with an explicit RNG, used by internal callers that already
// hold one (PrivateCompare).
func encWith(pub *PubKey, m *big.Int, rnd *rng) (*Counter, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, newError(ParamError, "plaintext out of range [0, n)")
	}
	var err error
	if rnd == nil {
		rnd, err = defaultRNG()
		if err != nil {
			return nil, err
		}
	}

	t1 := new(big.Int).Exp(pub.G, m, pub.NSquared)
	c, err := rerandomize(pub, t1, rnd)
	if err != nil {
		return nil, err
	}

	ctr := &Counter{Version: PaillierV1, C: c}
	ctr.touchTimestamp()
	return ctr, nil
}

// Touch re-randomizes c's ciphertext in place without changing its
// plaintext. It is used after duplication and after any path that would
// otherwise leak a structural relation between two ciphertexts.
func (c *Counter) Touch(pub *PubKey) error {
	rnd, err := defaultRNG()
	if err != nil {
		return err
	}
	return c.touchWith(pub, rnd)
}

func (c *Counter) touchWith(pub *PubKey, rnd *rng) error {
	newC, err := rerandomize(pub, c.C, rnd)
	if err != nil {
		return err
	}
	c.C = newC
	c.touchTimestamp()
	return nil
}
