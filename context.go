package paillier

import "math/big"

// KeyKind selects the scheme variant a Context's Keygen method produces.
// Only KindPaillier exists today; the type exists so the ctx-mirrored API
// matches the distilled scheme description's Keygen(ctx, type, keysize, ...)
// signature.
type KeyKind int

// KindPaillier is the only KeyKind this package implements.
const KindPaillier KeyKind = 1

// Context mirrors the last error produced by any operation invoked through
// it. It exists for the external CLI and counter-store collaborators named
// in the package scope, which want a stable ctx-based surface to bind
// against; direct callers of this package should use the idiomatic
// functions and methods instead and can ignore Context entirely. Per the
// design note on null-return error discipline, the mirror is a convenience,
// never load-bearing for control flow: every method already returns its
// own error.
type Context struct {
	lastErr error
}

// Init returns a fresh Context. There is no corresponding process-wide
// state to set up beyond what the package's lazily-initialized RNG already
// handles on first use.
func Init() *Context {
	return &Context{}
}

// Term releases ctx. It exists only to balance Init in the ctx-mirrored
// API; it does nothing an idiomatic caller needs to wait for.
func (ctx *Context) Term() {
	ctx.lastErr = nil
}

// LastError returns the error latched by the most recently invoked method
// on ctx, or nil if the last call succeeded or none has been made yet.
func (ctx *Context) LastError() error {
	return ctx.lastErr
}

func (ctx *Context) latch(err error) error {
	ctx.lastErr = err
	return err
}

// Keygen generates a key pair of the given kind and bit length.
func (ctx *Context) Keygen(kind KeyKind, bits int) (*PubKey, *PrivKey, error) {
	if kind != KindPaillier {
		err := newError(ParamError, "unsupported key kind")
		ctx.latch(err)
		return nil, nil, err
	}
	pub, priv, err := Keygen(bits)
	ctx.latch(err)
	return pub, priv, err
}

// NewCounter allocates a zero-valued counter under pub.
func (ctx *Context) NewCounter(pub *PubKey) (*Counter, error) {
	c, err := NewCounter(pub)
	ctx.latch(err)
	return c, err
}

// Inc increments counter by amount.
func (ctx *Context) Inc(counter *Counter, pub *PubKey, amount *big.Int) error {
	return ctx.latch(counter.IncBy(pub, amount))
}

// DecrementBy decrements counter by amount. Named to avoid clashing with
// the package-level Dec (decryption) on this ctx-mirrored surface.
func (ctx *Context) DecrementBy(counter *Counter, pub *PubKey, amount *big.Int) error {
	return ctx.latch(counter.DecBy(pub, amount))
}

// Add adds b's plaintext into a.
func (ctx *Context) Add(a, b *Counter, pub *PubKey) error {
	return ctx.latch(a.Add(pub, b))
}

// Sub subtracts b's plaintext from a.
func (ctx *Context) Sub(a, b *Counter, pub *PubKey) error {
	return ctx.latch(a.Sub(pub, b))
}

// Mul multiplies counter's plaintext by amount.
func (ctx *Context) Mul(counter *Counter, pub *PubKey, amount *big.Int) error {
	return ctx.latch(counter.MulBy(pub, amount))
}

// MulRand multiplies counter's plaintext by a fresh random scalar.
func (ctx *Context) MulRand(counter *Counter, pub *PubKey) error {
	return ctx.latch(counter.MulByRandom(pub))
}

// Touch re-randomizes counter's ciphertext in place.
func (ctx *Context) Touch(counter *Counter, pub *PubKey) error {
	return ctx.latch(counter.Touch(pub))
}

// Dup duplicates from into a freshly allocated, re-randomized counter.
func (ctx *Context) Dup(pub *PubKey, from *Counter) (*Counter, error) {
	to, err := Dup(pub, from)
	ctx.latch(err)
	return to, err
}

// Copy duplicates from into the preallocated destination to.
func (ctx *Context) Copy(pub *PubKey, from, to *Counter) error {
	return ctx.latch(Copy(pub, from, to))
}

// Decrypt decrypts counter with priv.
func (ctx *Context) Decrypt(counter *Counter, priv *PrivKey) (uint64, error) {
	m, err := Dec(priv, counter)
	ctx.latch(err)
	return m, err
}

// Compare returns sign(a-b), decrypting with whichever of privA, privB is
// non-nil.
func (ctx *Context) Compare(a, b *Counter, privA, privB *PrivKey) (int, error) {
	sign, err := Compare(privA, privB, a, b)
	ctx.latch(err)
	return sign, err
}

// PrivateCompare obliviously returns sign(a-b).
func (ctx *Context) PrivateCompare(a, b *Counter, pub *PubKey, priv *PrivKey) (int, error) {
	sign, err := PrivateCompare(pub, priv, a, b)
	ctx.latch(err)
	return sign, err
}
