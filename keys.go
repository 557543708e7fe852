package paillier

import "math/big"

// PubKey is the public half of a Paillier key pair: n is the product of two
// equal-length primes, g a generator of a suitable subgroup of Z*_{n^2}, and
// nSquared the cached value n*n. PubKey is immutable after construction and
// safe to share across goroutines.
type PubKey struct {
	N        *big.Int
	G        *big.Int
	NSquared *big.Int
}

// GetN returns a copy of the public modulus, so callers cannot mutate the
// key's internal state through the returned value.
func (pub *PubKey) GetN() *big.Int {
	return new(big.Int).Set(pub.N)
}

// GetG returns a copy of the generator.
func (pub *PubKey) GetG() *big.Int {
	return new(big.Int).Set(pub.G)
}

// GetNSquared returns a copy of n^2.
func (pub *PubKey) GetNSquared() *big.Int {
	return new(big.Int).Set(pub.NSquared)
}

// PrivKey is the private half of a Paillier key pair, holding the prime
// factors of N and the CRT helpers precomputed at key-generation time so
// that decryption and private comparison never need a full-width L-function
// division. PrivKey is immutable after construction and safe to share
// across goroutines; only the factorization itself is secret.
type PrivKey struct {
	*PubKey

	P  *big.Int
	Q  *big.Int
	P2 *big.Int // P*P
	Q2 *big.Int // Q*Q

	// PInv2w = P^-1 mod 2^bitlen(P); QInv2w analogous. Used by fastL.
	PInv2w *big.Int
	QInv2w *big.Int

	// HSubP = (fastL(G^(P-1) mod P^2, P, PInv2w))^-1 mod P; HSubQ analogous.
	HSubP *big.Int
	HSubQ *big.Int

	// QInv = (Q mod P)^-1 mod P, used by crtRecombine during decryption.
	QInv *big.Int
}

// CounterVersion tags the wire representation of a Counter's ciphertext so
// that future scheme revisions can be told apart on deserialization.
type CounterVersion int

// PaillierV1 is the only counter version this package produces today; it is
// also the default a deserialized counter is stamped with when the wire
// format carries no version byte.
const PaillierV1 CounterVersion = 1
