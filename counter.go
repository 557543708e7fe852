package paillier

import (
	"math/big"
	"time"
)

// Counter is a mutable, encrypted unsigned integer. It is exclusively owned
// by its caller: homomorphic operations mutate C in place rather than
// returning a new value, matching the resource model of the core this
// package descends from. A Counter never aliases a PubKey's internal
// integers.
type Counter struct {
	Version      CounterVersion
	C            *big.Int
	LastModified time.Time
}

// NewCounter allocates a counter holding an encryption of zero under pub.
func NewCounter(pub *PubKey) (*Counter, error) {
	return Enc(pub, zero)
}

// touchTimestamp is called by every successful mutating operation, per the
// "timestamp on every mutation" design note: it is an observable set with a
// monotonic-friendly clock, not something tests should depend on for exact
// equality.
func (c *Counter) touchTimestamp() {
	c.LastModified = time.Now()
}

// Dup creates a new counter with the same plaintext as from, re-randomized
// so the two ciphertexts are not bitwise identical.
func Dup(pub *PubKey, from *Counter) (*Counter, error) {
	to := &Counter{
		Version: from.Version,
		C:       new(big.Int).Set(from.C),
	}
	if err := to.Touch(pub); err != nil {
		return nil, err
	}
	return to, nil
}

// Copy performs the same operation as Dup into a preallocated destination.
func Copy(pub *PubKey, from, to *Counter) error {
	to.Version = from.Version
	to.C = new(big.Int).Set(from.C)
	return to.Touch(pub)
}

// Free zeroizes the counter's ciphertext in place. The counter must not be
// used after Free returns.
func (c *Counter) Free() {
	if c.C != nil {
		c.C.SetInt64(0)
	}
	c.C = nil
}
