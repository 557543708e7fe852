package paillier

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// rng is the package's CSPRNG. It mirrors the seeding discipline of the
// crypto core this package is a rewrite of: that core seeds an arc4-family
// stream cipher with at least 1024 bits pulled from a platform source
// before drawing a single bit from it. The modern arc4random family is
// itself a ChaCha20-based stream cipher, so golang.org/x/crypto/chacha20
// keyed from crypto/rand.Reader stands in for that generator; newRNG
// describes how much of the seed it reads actually keys the cipher.
//
// A *rng is not safe for concurrent use without the mutex below: chacha20's
// cipher.Stream is a plain byte-stream generator with internal state that
// advances on every XORKeyStream call.
type rng struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
}

// newRNG reads 140 bytes (1120 bits) from crypto/rand.Reader and keys a
// fresh CSPRNG with the first 44 of them: a 32-byte key and a 12-byte nonce,
// 352 bits in all. The remaining 96 bytes are read but not used, so the
// cipher state carries no more than 352 bits of seed. It fails with OsError if the platform
// source cannot produce enough bytes, and with CryptoError if the cipher
// cannot be constructed from the seed it was given.
func newRNG() (*rng, error) {
	seed := make([]byte, chacha20.KeySize+chacha20.NonceSize+96)
	if _, err := io.ReadFull(cryptorand.Reader, seed); err != nil {
		return nil, wrapError(OsError, "could not read seed from platform RNG source", err)
	}
	key := seed[:chacha20.KeySize]
	nonce := seed[chacha20.KeySize : chacha20.KeySize+chacha20.NonceSize]
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, wrapError(CryptoError, "RNG could not be seeded", err)
	}
	return &rng{stream: stream}, nil
}

func (r *rng) read(buf []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range buf {
		buf[i] = 0
	}
	r.stream.XORKeyStream(buf, buf)
}

// uniformBelow returns a uniform integer in [0, m) by rejection sampling:
// draw bitlen(m) random bits and retry when the draw lands outside range.
func (r *rng) uniformBelow(m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, newError(ParamError, "uniformBelow requires a positive bound")
	}
	bitLen := m.BitLen()
	byteLen := (bitLen + 7) / 8
	excess := uint(byteLen*8 - bitLen)
	mask := byte(0xFF) >> excess
	buf := make([]byte, byteLen)
	for {
		r.read(buf)
		buf[0] &= mask
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(m) < 0 {
			return v, nil
		}
	}
}

// randomBits returns a uniform w-bit integer with the top bit set.
func (r *rng) randomBits(w int) (*big.Int, error) {
	if w <= 0 {
		return nil, newError(ParamError, "randomBits requires a positive width")
	}
	byteLen := (w + 7) / 8
	excess := uint(byteLen*8 - w)
	buf := make([]byte, byteLen)
	r.read(buf)
	mask := byte(0xFF) >> excess
	buf[0] &= mask
	buf[0] |= 1 << (7 - excess)
	return new(big.Int).SetBytes(buf), nil
}

var (
	defaultRNGOnce sync.Once
	defaultRNGInst *rng
	defaultRNGErr  error
)

// defaultRNG lazily creates the process-wide RNG on first use, replacing
// the crypto core's explicit Init/Term lifecycle with one-time
// initialization tied to first key creation, per the design note on
// process-wide init/term.
func defaultRNG() (*rng, error) {
	defaultRNGOnce.Do(func() {
		defaultRNGInst, defaultRNGErr = newRNG()
	})
	return defaultRNGInst, defaultRNGErr
}
