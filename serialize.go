package paillier

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// KeyType discriminates the two variants of KeyString. The switches over
// KeyType in this package return a DataError for any value other than
// KeyTypePublic and KeyTypePrivate.
type KeyType string

const (
	KeyTypePublic  KeyType = "paillier-public"
	KeyTypePrivate KeyType = "paillier-private"
)

// PublicKeyString is the serialized, hex-rendered projection of a PubKey.
type PublicKeyString struct {
	Type     KeyType `json:"type"`
	N        string  `json:"n"`
	G        string  `json:"g"`
	NSquared string  `json:"nSquared"`
}

// PrivateKeyString is the serialized, hex-rendered projection of a PrivKey.
type PrivateKeyString struct {
	Type   KeyType `json:"type"`
	G      string  `json:"g"`
	P      string  `json:"p"`
	Q      string  `json:"q"`
	PSq    string  `json:"pSquared"`
	QSq    string  `json:"qSquared"`
	PInv2w string  `json:"pInv2w"`
	QInv2w string  `json:"qInv2w"`
	HSubP  string  `json:"hSubP"`
	HSubQ  string  `json:"hSubQ"`
	QInv   string  `json:"qInv"`
}

// KeyString is a tagged union over the two key string variants. Exactly one
// of Public, Private is non-nil, matching Type.
type KeyString struct {
	Type    KeyType
	Public  *PublicKeyString
	Private *PrivateKeyString
}

// toHex renders n as uppercase hex with no leading sign byte, matching the
// underlying big-integer library's standard hex form.
func toHex(n *big.Int) string {
	return strings.ToUpper(fmt.Sprintf("%x", n))
}

// fromHex parses an uppercase (or lowercase) hex string into a big.Int,
// returning DataError if the field is malformed or empty.
func fromHex(s string) (*big.Int, error) {
	if s == "" {
		return nil, newError(DataError, "empty hexadecimal field")
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, newError(DataError, "field is not valid hexadecimal")
	}
	return n, nil
}

// KeyToString renders key (a *PubKey or *PrivKey) as a tagged KeyString.
func KeyToString(key interface{}) (*KeyString, error) {
	switch k := key.(type) {
	case *PubKey:
		return &KeyString{
			Type: KeyTypePublic,
			Public: &PublicKeyString{
				Type:     KeyTypePublic,
				N:        toHex(k.N),
				G:        toHex(k.G),
				NSquared: toHex(k.NSquared),
			},
		}, nil
	case *PrivKey:
		return &KeyString{
			Type: KeyTypePrivate,
			Private: &PrivateKeyString{
				Type:   KeyTypePrivate,
				G:      toHex(k.G),
				P:      toHex(k.P),
				Q:      toHex(k.Q),
				PSq:    toHex(k.P2),
				QSq:    toHex(k.Q2),
				PInv2w: toHex(k.PInv2w),
				QInv2w: toHex(k.QInv2w),
				HSubP:  toHex(k.HSubP),
				HSubQ:  toHex(k.HSubQ),
				QInv:   toHex(k.QInv),
			},
		}, nil
	default:
		return nil, newError(ParamError, "KeyToString: unsupported key type")
	}
}

// StringToKey parses a KeyString back into a *PubKey or *PrivKey, returning
// it as an interface{} so the caller's type switch (or a type assertion)
// recovers the concrete type, per the tagged-union design note.
func StringToKey(s *KeyString) (interface{}, error) {
	switch s.Type {
	case KeyTypePublic:
		if s.Public == nil {
			return nil, newError(DataError, "key string tagged public but carries no public fields")
		}
		return parsePublicKeyString(s.Public)
	case KeyTypePrivate:
		if s.Private == nil {
			return nil, newError(DataError, "key string tagged private but carries no private fields")
		}
		return parsePrivateKeyString(s.Private)
	default:
		return nil, newError(DataError, "unrecognized key type")
	}
}

func parsePublicKeyString(s *PublicKeyString) (*PubKey, error) {
	n, err := fromHex(s.N)
	if err != nil {
		return nil, err
	}
	g, err := fromHex(s.G)
	if err != nil {
		return nil, err
	}
	nSquared, err := fromHex(s.NSquared)
	if err != nil {
		return nil, err
	}
	return &PubKey{N: n, G: g, NSquared: nSquared}, nil
}

func parsePrivateKeyString(s *PrivateKeyString) (*PrivKey, error) {
	hexFields := []string{s.G, s.P, s.Q, s.PSq, s.QSq, s.PInv2w, s.QInv2w, s.HSubP, s.HSubQ, s.QInv}
	parsed := make([]*big.Int, len(hexFields))
	for i, hexField := range hexFields {
		v, err := fromHex(hexField)
		if err != nil {
			return nil, err
		}
		parsed[i] = v
	}
	g, p, q, pSq, qSq, pInv2w, qInv2w, hSubP, hSubQ, qInv := parsed[0], parsed[1], parsed[2], parsed[3], parsed[4], parsed[5], parsed[6], parsed[7], parsed[8], parsed[9]

	n := new(big.Int).Mul(p, q)
	return &PrivKey{
		PubKey: &PubKey{N: n, G: g, NSquared: new(big.Int).Mul(n, n)},
		P:      p,
		Q:      q,
		P2:     pSq,
		Q2:     qSq,
		PInv2w: pInv2w,
		QInv2w: qInv2w,
		HSubP:  hSubP,
		HSubQ:  hSubQ,
		QInv:   qInv,
	}, nil
}

// CounterToString renders a counter's ciphertext as a single uppercase hex
// string. No version byte and no length prefix are carried: the version is
// recovered as PaillierV1 on deserialization.
func CounterToString(c *Counter) (string, error) {
	if c.C == nil {
		return "", newError(ParamError, "cannot serialize a freed counter")
	}
	return toHex(c.C), nil
}

// StringToCounter parses a hex ciphertext back into a fresh counter stamped
// PaillierV1 and with a fresh timestamp.
func StringToCounter(s string) (*Counter, error) {
	c, err := fromHex(s)
	if err != nil {
		return nil, err
	}
	ctr := &Counter{Version: PaillierV1, C: c}
	ctr.touchTimestamp()
	return ctr, nil
}

// FreeKeyString best-effort clears the hex fields of a KeyString before
// release. Go strings are immutable, so this cannot guarantee the backing
// memory is overwritten; it exists to drop this package's own references
// promptly, matching the disposal routines described for the scheme.
func FreeKeyString(s *KeyString) {
	if s == nil {
		return
	}
	if s.Public != nil {
		*s.Public = PublicKeyString{}
	}
	if s.Private != nil {
		*s.Private = PrivateKeyString{}
	}
}

// FreeCounterString clears a counter's hex representation. See the caveat
// on FreeKeyString about Go string immutability.
func FreeCounterString(s *string) {
	if s != nil {
		*s = ""
	}
}

// MarshalJSON renders the KeyString as its tagged variant, flattening the
// union so the wire form carries only the fields that apply.
func (k *KeyString) MarshalJSON() ([]byte, error) {
	switch k.Type {
	case KeyTypePublic:
		return json.Marshal(k.Public)
	case KeyTypePrivate:
		return json.Marshal(k.Private)
	default:
		return nil, newError(DataError, "cannot marshal key string with unrecognized type")
	}
}

// UnmarshalJSON recovers the tagged variant from a "type" discriminator
// field present in the JSON object.
func (k *KeyString) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type KeyType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return newError(DataError, "malformed key string JSON")
	}
	switch probe.Type {
	case KeyTypePublic:
		pub := new(PublicKeyString)
		if err := json.Unmarshal(data, pub); err != nil {
			return newError(DataError, "malformed public key string JSON")
		}
		k.Type = KeyTypePublic
		k.Public = pub
		return nil
	case KeyTypePrivate:
		priv := new(PrivateKeyString)
		if err := json.Unmarshal(data, priv); err != nil {
			return newError(DataError, "malformed private key string JSON")
		}
		k.Type = KeyTypePrivate
		k.Private = priv
		return nil
	default:
		return newError(DataError, "unrecognized key type in JSON")
	}
}
