package paillier

import "math/big"

// PrivateCompare obliviously computes sign(a - b) for two counters
// encrypted under pub without revealing either plaintext to the caller
// beyond that sign: it blinds the difference with a fresh random shift rho
// before decrypting, then subtracts rho back out in the clear.
//
// The sign is correct only while the blinded value a - b + rho does not wrap
// modulo n: that needs b - a <= rho when a < b, and a - b + rho < n when
// a > b. rho has SecurityParameter+2 bits with the top bit set, so both hold
// whenever |a-b| <= 2^(SecurityParameter+1) and |a-b| + 2^(SecurityParameter+2)
// <= n; outside that range the result can be wrong (see the open question in
// the design notes about the absence of a structural wrap-around defense).
func PrivateCompare(pub *PubKey, priv *PrivKey, a, b *Counter) (int, error) {
	rnd, err := defaultRNG()
	if err != nil {
		return 0, err
	}

	d, err := Dup(pub, a)
	if err != nil {
		return 0, err
	}

	rho, err := rnd.randomBits(SecurityParameter + 2)
	if err != nil {
		return 0, err
	}
	defer rho.SetInt64(0)

	blind, err := encWith(pub, rho, rnd)
	if err != nil {
		return 0, err
	}
	if err := d.Add(pub, blind); err != nil {
		return 0, err
	}
	if err := d.Sub(pub, b); err != nil {
		return 0, err
	}

	m, err := decryptToBigInt(priv, d)
	if err != nil {
		return 0, err
	}
	defer m.SetInt64(0)

	diff := new(big.Int).Sub(m, rho)
	return diff.Sign(), nil
}

// Compare returns the integer sign of a's plaintext minus b's, decrypting
// both counters with whichever private key is non-nil. If both privA and
// privB are non-nil, privA decrypts a and privB decrypts b; if only one is
// provided it is reused for both. Compare returns ParamError if neither
// private key is provided.
func Compare(privA, privB *PrivKey, a, b *Counter) (int, error) {
	if privA == nil && privB == nil {
		return 0, newError(ParamError, "Compare requires at least one private key")
	}
	if privA == nil {
		privA = privB
	}
	if privB == nil {
		privB = privA
	}

	ma, err := decryptToBigInt(privA, a)
	if err != nil {
		return 0, err
	}
	defer ma.SetInt64(0)

	mb, err := decryptToBigInt(privB, b)
	if err != nil {
		return 0, err
	}
	defer mb.SetInt64(0)

	return new(big.Int).Sub(ma, mb).Sign(), nil
}
