package paillier

import "math/big"

// inZStar reports whether a is a member of Z*_m: 0 <= a < m and
// gcd(a, m) == 1. Called with m = n to test Z*_n and with m = n^2 to test
// Z*_{n^2}.
func inZStar(a, m *big.Int) bool {
	if a.Sign() < 0 || a.Cmp(m) >= 0 {
		return false
	}
	gcd := new(big.Int).GCD(nil, nil, a, m)
	return gcd.Cmp(one) == 0
}

// fastL computes L(u) = (u-1)/x mod x without performing a division, using
// the Paillier-Pointcheval trick: mask (u-1) to the bit length of x, then
// multiply by the precomputed inverse of x modulo 2^w. This is valid
// because, for the u arising in Paillier decryption, u-1 is a multiple of
// x and the true quotient is smaller than x, so reducing modulo 2^w and
// multiplying by x^-1 mod 2^w recovers the same quotient mod 2^w as would
// be found by a full division.
func fastL(u, x, xInv2w *big.Int) *big.Int {
	w := uint(x.BitLen())
	t := new(big.Int).Sub(u, one)
	t.Mod(t, twoPow(w))
	y := new(big.Int).Mul(t, xInv2w)
	y.Mod(y, twoPow(w))
	return y
}

// twoPow returns 2^w.
func twoPow(w uint) *big.Int {
	return new(big.Int).Lsh(one, w)
}

// crtRecombine reconstructs g such that g = g1 (mod p) and g = g2 (mod q)
// using Garner's form, given qInv = (q mod p)^-1 mod p. The result lies in
// [0, p*q).
func crtRecombine(g1, p, g2, q, qInv *big.Int) *big.Int {
	t := new(big.Int).Sub(g1, g2)
	if t.Sign() < 0 {
		t.Add(t, p)
	}
	h := new(big.Int).Mul(t, qInv)
	h.Mod(h, p)
	g := new(big.Int).Mul(q, h)
	g.Add(g, g2)
	return g
}
