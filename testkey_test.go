package paillier

import (
	"math/big"
	"sync"
	"testing"
)

// smallTestKey builds a PrivKey/PubKey pair from the small primes p=13,
// q=11 (n=143) the teacher's own tests use, with g = n+1, the standard
// simplified generator choice. It exists so most of this package's tests
// can exercise the real encrypt/decrypt/homomorphic paths without paying
// for a full Keygen call.
func smallTestKey(t *testing.T) (*PubKey, *PrivKey) {
	p := big.NewInt(13)
	q := big.NewInt(11)
	n := new(big.Int).Mul(p, q)
	nSquared := new(big.Int).Mul(n, n)
	g := new(big.Int).Add(n, one)

	p2 := new(big.Int).Mul(p, p)
	q2 := new(big.Int).Mul(q, q)

	pInv2w := new(big.Int).ModInverse(p, twoPow(uint(p.BitLen())))
	qInv2w := new(big.Int).ModInverse(q, twoPow(uint(q.BitLen())))
	if pInv2w == nil || qInv2w == nil {
		t.Fatalf("could not build test key: missing 2^w inverse")
	}

	pMin1 := new(big.Int).Sub(p, one)
	up := new(big.Int).Exp(g, pMin1, p2)
	lp := fastL(up, p, pInv2w)
	hSubP := new(big.Int).ModInverse(lp, p)

	qMin1 := new(big.Int).Sub(q, one)
	uq := new(big.Int).Exp(g, qMin1, q2)
	lq := fastL(uq, q, qInv2w)
	hSubQ := new(big.Int).ModInverse(lq, q)
	if hSubP == nil || hSubQ == nil {
		t.Fatalf("could not build test key: missing hSub factor")
	}

	qInv := new(big.Int).ModInverse(new(big.Int).Mod(q, p), p)
	if qInv == nil {
		t.Fatalf("could not build test key: q has no inverse mod p")
	}

	pub := &PubKey{N: n, G: g, NSquared: nSquared}
	priv := &PrivKey{
		PubKey: pub,
		P:      p, Q: q, P2: p2, Q2: q2,
		PInv2w: pInv2w, QInv2w: qInv2w,
		HSubP: hSubP, HSubQ: hSubQ,
		QInv: qInv,
	}
	return pub, priv
}

var (
	genTestKeyOnce sync.Once
	genTestKeyPub  *PubKey
	genTestKeyPriv *PrivKey
	genTestKeyErr  error
)

// genTestKey runs Keygen once per test binary at a bit length comfortably
// larger than SecurityParameter+2, so PrivateCompare's blinding factor fits
// well inside the plaintext space, and caches the result: every test that
// needs a realistically-sized key shares the one generation cost.
func genTestKey(t *testing.T) (*PubKey, *PrivKey) {
	genTestKeyOnce.Do(func() {
		genTestKeyPub, genTestKeyPriv, genTestKeyErr = Keygen(256)
	})
	if genTestKeyErr != nil {
		t.Fatalf("Keygen(256): %v", genTestKeyErr)
	}
	return genTestKeyPub, genTestKeyPriv
}

// mediumTestKey builds a key pair whose modulus n exceeds 2^64, from two
// known primes just above 2^32 (4294967311 and 4294967357), so tests can
// exercise Dec's overflow path without paying for a full Keygen call at a
// production bit length.
func mediumTestKey(t *testing.T) (*PubKey, *PrivKey) {
	p := new(big.Int).SetUint64(4294967311)
	q := new(big.Int).SetUint64(4294967357)
	n := new(big.Int).Mul(p, q)
	nSquared := new(big.Int).Mul(n, n)
	g := new(big.Int).Add(n, one)

	p2 := new(big.Int).Mul(p, p)
	q2 := new(big.Int).Mul(q, q)

	pInv2w := new(big.Int).ModInverse(p, twoPow(uint(p.BitLen())))
	qInv2w := new(big.Int).ModInverse(q, twoPow(uint(q.BitLen())))
	if pInv2w == nil || qInv2w == nil {
		t.Fatalf("could not build medium test key: missing 2^w inverse")
	}

	pMin1 := new(big.Int).Sub(p, one)
	up := new(big.Int).Exp(g, pMin1, p2)
	lp := fastL(up, p, pInv2w)
	hSubP := new(big.Int).ModInverse(lp, p)

	qMin1 := new(big.Int).Sub(q, one)
	uq := new(big.Int).Exp(g, qMin1, q2)
	lq := fastL(uq, q, qInv2w)
	hSubQ := new(big.Int).ModInverse(lq, q)
	if hSubP == nil || hSubQ == nil {
		t.Fatalf("could not build medium test key: missing hSub factor")
	}

	qInv := new(big.Int).ModInverse(new(big.Int).Mod(q, p), p)
	if qInv == nil {
		t.Fatalf("could not build medium test key: q has no inverse mod p")
	}

	pub := &PubKey{N: n, G: g, NSquared: nSquared}
	priv := &PrivKey{
		PubKey: pub,
		P:      p, Q: q, P2: p2, Q2: q2,
		PInv2w: pInv2w, QInv2w: qInv2w,
		HSubP: hSubP, HSubQ: hSubQ,
		QInv: qInv,
	}
	return pub, priv
}
