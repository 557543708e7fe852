package paillier

import (
	"math/big"
	"sync"
	"time"
)

// primeGenConcurrency and primeGenTimeout configure the concurrent prime
// search in GenerateConcurrentPrime. A single goroutine suffices for the
// key sizes this package's tests use; production-sized keys benefit from
// racing more of them.
const (
	primeGenConcurrency = 2
	primeGenTimeout     = 120 * time.Second
)

// maxGenG bounds the retries of each per-factor generator-synthesis loop in
// initGenerator before Keygen gives up with a CryptoError, mirroring the
// retry ceilings used for the same purpose in getamis-alice/paillier.
const maxGenG = 100

// maxPrimePairAttempts bounds how many times Keygen will draw a fresh
// (p, q) pair looking for p != q before giving up.
const maxPrimePairAttempts = 10

// keyGenerator accumulates the intermediate values of Paillier key
// generation one step at a time, following the step-method style of the
// threshold key generator this package's generator-synthesis logic is
// descended from (initPsAndQs / initShortcuts / computeV, generalized here
// to plain, non-safe primes since this scheme does not require them).
type keyGenerator struct {
	bits int

	p, q           *big.Int
	n, nSquared    *big.Int
	p2, q2         *big.Int
	g              *big.Int
	pInv2w, qInv2w *big.Int
	hSubP, hSubQ   *big.Int
	qInv           *big.Int
}

// Keygen generates a fresh Paillier key pair with primes of the given bit
// length. It fails with CryptoError if prime generation or any modular
// inverse it depends on cannot be completed within this function's retry
// budgets.
func Keygen(bits int) (*PubKey, *PrivKey, error) {
	if bits < 8 {
		return nil, nil, newError(ParamError, "key size must be at least 8 bits")
	}

	kg := &keyGenerator{bits: bits}
	if err := kg.initPrimes(); err != nil {
		return nil, nil, err
	}
	kg.initShortcuts()
	if err := kg.initGenerator(); err != nil {
		return nil, nil, err
	}
	if err := kg.initCRTHelpers(); err != nil {
		return nil, nil, err
	}
	return kg.publicKey(), kg.privateKey(), nil
}

// initPrimes draws p and q concurrently, each on its own goroutine, and
// retries the whole pair if the two primes collide (a near-impossible event
// for any realistic bit length, kept only as the defensive check the
// scheme's invariant p != q calls for).
func (kg *keyGenerator) initPrimes() error {
	for attempt := 0; attempt < maxPrimePairAttempts; attempt++ {
		p, q, err := generatePrimePair(kg.bits)
		if err != nil {
			return err
		}
		if p.Cmp(q) != 0 {
			kg.p, kg.q = p, q
			return nil
		}
	}
	return newError(CryptoError, "could not draw distinct primes p, q")
}

func generatePrimePair(bits int) (*big.Int, *big.Int, error) {
	type result struct {
		v   *big.Int
		err error
	}
	pc := make(chan result, 1)
	qc := make(chan result, 1)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		v, err := GenerateConcurrentPrime(bits, primeGenConcurrency, primeGenTimeout)
		pc <- result{v, err}
	}()
	go func() {
		defer wg.Done()
		v, err := GenerateConcurrentPrime(bits, primeGenConcurrency, primeGenTimeout)
		qc <- result{v, err}
	}()
	wg.Wait()

	rp, rq := <-pc, <-qc
	if rp.err != nil {
		return nil, nil, wrapError(CryptoError, "could not generate prime p", rp.err)
	}
	if rq.err != nil {
		return nil, nil, wrapError(CryptoError, "could not generate prime q", rq.err)
	}
	return rp.v, rq.v, nil
}

func (kg *keyGenerator) initShortcuts() {
	kg.n = new(big.Int).Mul(kg.p, kg.q)
	kg.nSquared = new(big.Int).Mul(kg.n, kg.n)
	kg.p2 = new(big.Int).Mul(kg.p, kg.p)
	kg.q2 = new(big.Int).Mul(kg.q, kg.q)
}

// initGenerator synthesizes g by drawing g_p and g_q independently, each
// required to lie in Z*_{x^2} and to have order modulo x^2 divisible by x,
// then CRT-recombining them. The two per-factor loops run concurrently.
func (kg *keyGenerator) initGenerator() error {
	type result struct {
		g   *big.Int
		err error
	}
	pc := make(chan result, 1)
	qc := make(chan result, 1)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		g, err := synthesizeFactorGenerator(kg.p, kg.p2)
		pc <- result{g, err}
	}()
	go func() {
		defer wg.Done()
		g, err := synthesizeFactorGenerator(kg.q, kg.q2)
		qc <- result{g, err}
	}()
	wg.Wait()

	rp, rq := <-pc, <-qc
	if rp.err != nil {
		return rp.err
	}
	if rq.err != nil {
		return rq.err
	}

	inv := new(big.Int).ModInverse(new(big.Int).Mod(kg.q2, kg.p2), kg.p2)
	if inv == nil {
		return newError(CryptoError, "q^2 has no inverse mod p^2")
	}
	kg.g = crtRecombine(rp.g, kg.p2, rq.g, kg.q2, inv)
	return nil
}

// synthesizeFactorGenerator draws candidates in [0, x2) until one lies in
// Z*_{x2} and has order modulo x2 divisible by x (i.e. g^(x-1) != 1 mod x2).
func synthesizeFactorGenerator(x, x2 *big.Int) (*big.Int, error) {
	rnd, err := defaultRNG()
	if err != nil {
		return nil, err
	}
	xMin1 := new(big.Int).Sub(x, one)
	defer xMin1.SetInt64(0)
	for attempt := 0; attempt < maxGenG; attempt++ {
		g, err := rnd.uniformBelow(x2)
		if err != nil {
			return nil, err
		}
		if !inZStar(g, x2) {
			continue
		}
		if new(big.Int).Exp(g, xMin1, x2).Cmp(one) == 0 {
			continue
		}
		return g, nil
	}
	return nil, newError(CryptoError, "generator synthesis exceeded retry budget")
}

func (kg *keyGenerator) initCRTHelpers() error {
	kg.pInv2w = new(big.Int).ModInverse(kg.p, twoPow(uint(kg.p.BitLen())))
	if kg.pInv2w == nil {
		return newError(CryptoError, "p has no inverse mod 2^bitlen(p)")
	}
	kg.qInv2w = new(big.Int).ModInverse(kg.q, twoPow(uint(kg.q.BitLen())))
	if kg.qInv2w == nil {
		return newError(CryptoError, "q has no inverse mod 2^bitlen(q)")
	}

	s := newScratch()
	defer s.zero()

	pMin1 := s.new().Sub(kg.p, one)
	up := s.track(new(big.Int).Exp(kg.g, pMin1, kg.p2))
	lp := s.track(fastL(up, kg.p, kg.pInv2w))
	kg.hSubP = new(big.Int).ModInverse(lp, kg.p)
	if kg.hSubP == nil {
		return newError(CryptoError, "could not compute hSubP")
	}

	qMin1 := s.new().Sub(kg.q, one)
	uq := s.track(new(big.Int).Exp(kg.g, qMin1, kg.q2))
	lq := s.track(fastL(uq, kg.q, kg.qInv2w))
	kg.hSubQ = new(big.Int).ModInverse(lq, kg.q)
	if kg.hSubQ == nil {
		return newError(CryptoError, "could not compute hSubQ")
	}

	kg.qInv = new(big.Int).ModInverse(new(big.Int).Mod(kg.q, kg.p), kg.p)
	if kg.qInv == nil {
		return newError(CryptoError, "q has no inverse mod p")
	}
	return nil
}

func (kg *keyGenerator) publicKey() *PubKey {
	return &PubKey{N: kg.n, G: kg.g, NSquared: kg.nSquared}
}

func (kg *keyGenerator) privateKey() *PrivKey {
	return &PrivKey{
		PubKey: kg.publicKey(),
		P:      kg.p,
		Q:      kg.q,
		P2:     kg.p2,
		Q2:     kg.q2,
		PInv2w: kg.pInv2w,
		QInv2w: kg.qInv2w,
		HSubP:  kg.hSubP,
		HSubQ:  kg.hSubQ,
		QInv:   kg.qInv,
	}
}
