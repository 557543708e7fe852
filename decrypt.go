package paillier

import "math/big"

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// Dec decrypts counter using priv, accelerated by CRT on priv's prime
// factors, and projects the result to a uint64. It fails with
// OverflowError if the decrypted plaintext does not fit in 64 bits.
func Dec(priv *PrivKey, counter *Counter) (uint64, error) {
	m, err := decryptToBigInt(priv, counter)
	if err != nil {
		return 0, err
	}
	if m.Cmp(maxUint64) > 0 {
		return 0, newError(OverflowError, "decrypted plaintext exceeds 64 bits")
	}
	return m.Uint64(), nil
}

// decryptToBigInt implements the CRT-accelerated Paillier decryption
// described in the scheme: reduce the ciphertext modulo each prime square,
// apply the fast-L trick per factor, then recombine with Garner's form.
func decryptToBigInt(priv *PrivKey, counter *Counter) (*big.Int, error) {
	s := newScratch()
	defer s.zero()

	cp := s.new().Mod(counter.C, priv.P2)
	pMin1 := s.new().Sub(priv.P, one)
	up := s.track(new(big.Int).Exp(cp, pMin1, priv.P2))
	lp := s.track(fastL(up, priv.P, priv.PInv2w))
	mp := s.new().Mul(lp, priv.HSubP)
	mp.Mod(mp, priv.P)

	cq := s.new().Mod(counter.C, priv.Q2)
	qMin1 := s.new().Sub(priv.Q, one)
	uq := s.track(new(big.Int).Exp(cq, qMin1, priv.Q2))
	lq := s.track(fastL(uq, priv.Q, priv.QInv2w))
	mq := s.new().Mul(lq, priv.HSubQ)
	mq.Mod(mq, priv.Q)

	m := crtRecombine(mp, priv.P, mq, priv.Q, priv.QInv)
	if m.Sign() < 0 || m.Cmp(priv.N) >= 0 {
		return nil, newError(CryptoError, "decrypted value outside Z_n")
	}
	return m, nil
}
