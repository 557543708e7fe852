package paillier

import "math/big"

// SecurityParameter (S in the scheme description) bounds the bit width of
// the random exponents used by MulByRandom and PrivateCompare: each draws a
// fresh rho of SecurityParameter+2 bits so it statistically drowns out the
// quantity it blinds.
const SecurityParameter = 128

// IncBy homomorphically adds the plaintext scalar a to c: starting from an
// encryption of m, c becomes an encryption of (m+a) mod n. When a == 1 the
// generator g is used directly as the pre-factor instead of computing g^a,
// saving an exponentiation.
func (c *Counter) IncBy(pub *PubKey, a *big.Int) error {
	var pre *big.Int
	if a.Cmp(one) == 0 {
		pre = pub.G
	} else {
		pre = new(big.Int).Exp(pub.G, a, pub.NSquared)
	}
	return c.applyPreFactor(pub, pre)
}

// DecBy homomorphically subtracts the plaintext scalar a from c. It does
// not clamp against underflow: the counter is a residue modulo n, and
// subtracting more than the current plaintext wraps around rather than
// erroring, matching the scheme's treatment of a counter as Z_n-valued.
func (c *Counter) DecBy(pub *PubKey, a *big.Int) error {
	var gA *big.Int
	if a.Cmp(one) == 0 {
		gA = pub.G
	} else {
		gA = new(big.Int).Exp(pub.G, a, pub.NSquared)
	}
	pre := new(big.Int).ModInverse(gA, pub.NSquared)
	if pre == nil {
		return newError(CryptoError, "g^a has no inverse mod n^2")
	}
	return c.applyPreFactor(pub, pre)
}

// Add homomorphically adds the plaintext of other into c.
func (c *Counter) Add(pub *PubKey, other *Counter) error {
	return c.applyPreFactor(pub, other.C)
}

// Sub homomorphically subtracts the plaintext of other from c. Like DecBy,
// it performs no underflow clamp.
func (c *Counter) Sub(pub *PubKey, other *Counter) error {
	inv := new(big.Int).ModInverse(other.C, pub.NSquared)
	if inv == nil {
		return newError(CryptoError, "ciphertext has no inverse mod n^2")
	}
	return c.applyPreFactor(pub, inv)
}

// applyPreFactor multiplies c.C by pre mod n^2, then re-randomizes and
// stamps the timestamp. Every homomorphic addition-family operation
// (IncBy, DecBy, Add, Sub) goes through this one path.
func (c *Counter) applyPreFactor(pub *PubKey, pre *big.Int) error {
	rnd, err := defaultRNG()
	if err != nil {
		return err
	}
	updated := new(big.Int).Mul(c.C, pre)
	updated.Mod(updated, pub.NSquared)
	randomized, err := rerandomize(pub, updated, rnd)
	if err != nil {
		return err
	}
	c.C = randomized
	c.touchTimestamp()
	return nil
}

// MulBy homomorphically multiplies c's plaintext by the scalar a: c
// becomes an encryption of (m*a) mod n.
func (c *Counter) MulBy(pub *PubKey, a *big.Int) error {
	rnd, err := defaultRNG()
	if err != nil {
		return err
	}
	exponent := new(big.Int).Mod(a, pub.N)
	updated := new(big.Int).Exp(c.C, exponent, pub.NSquared)
	randomized, err := rerandomize(pub, updated, rnd)
	if err != nil {
		return err
	}
	c.C = randomized
	c.touchTimestamp()
	return nil
}

// MulByRandom homomorphically multiplies c's plaintext by a fresh random
// scalar rho of SecurityParameter+2 bits. Multiplying a zero-plaintext
// counter by rho still decrypts to zero.
func (c *Counter) MulByRandom(pub *PubKey) error {
	rnd, err := defaultRNG()
	if err != nil {
		return err
	}
	rho, err := rnd.randomBits(SecurityParameter + 2)
	if err != nil {
		return err
	}
	defer rho.SetInt64(0)
	return c.MulBy(pub, rho)
}
