// Package paillierbson provides BSON serialization for paillier keys and
// counters, for callers that persist them through a gopkg.in/mgo.v2-backed
// store. It is a codec only: the store itself (and its schema, indexing,
// and lifecycle) is an external collaborator, not something this package
// provides.
//
// The pattern mirrors the teacher library's bson package: a package-local
// type alias of the domain type implements bson.Getter/bson.Setter over a
// small intermediate struct carrying the same uppercase-hex strings used by
// the hex codec in the root package.
package paillierbson

import (
	"errors"

	"github.com/didiercrunch/ctrpaillier"
	"gopkg.in/mgo.v2/bson"
)

// PublicKey is a BSON-serializable alias of paillier.PubKey.
type PublicKey paillier.PubKey

// PrivateKey is a BSON-serializable alias of paillier.PrivKey.
type PrivateKey paillier.PrivKey

// Counter is a BSON-serializable alias of paillier.Counter.
type Counter paillier.Counter

type dbPublicKey struct {
	N        string
	G        string
	NSquared string
}

// GetBSON implements bson.Getter.
func (pub *PublicKey) GetBSON() (interface{}, error) {
	ks, err := paillier.KeyToString((*paillier.PubKey)(pub))
	if err != nil {
		return nil, err
	}
	return &dbPublicKey{N: ks.Public.N, G: ks.Public.G, NSquared: ks.Public.NSquared}, nil
}

// SetBSON implements bson.Setter.
func (pub *PublicKey) SetBSON(raw bson.Raw) error {
	db := new(dbPublicKey)
	if err := raw.Unmarshal(db); err != nil {
		return err
	}
	key, err := paillier.StringToKey(&paillier.KeyString{
		Type: paillier.KeyTypePublic,
		Public: &paillier.PublicKeyString{
			Type:     paillier.KeyTypePublic,
			N:        db.N,
			G:        db.G,
			NSquared: db.NSquared,
		},
	})
	if err != nil {
		return err
	}
	*pub = PublicKey(*key.(*paillier.PubKey))
	return nil
}

type dbPrivateKey struct {
	G      string
	P      string
	Q      string
	PSq    string
	QSq    string
	PInv2w string
	QInv2w string
	HSubP  string
	HSubQ  string
	QInv   string
}

// GetBSON implements bson.Getter.
func (priv *PrivateKey) GetBSON() (interface{}, error) {
	ks, err := paillier.KeyToString((*paillier.PrivKey)(priv))
	if err != nil {
		return nil, err
	}
	p := ks.Private
	return &dbPrivateKey{
		G: p.G, P: p.P, Q: p.Q, PSq: p.PSq, QSq: p.QSq,
		PInv2w: p.PInv2w, QInv2w: p.QInv2w,
		HSubP: p.HSubP, HSubQ: p.HSubQ, QInv: p.QInv,
	}, nil
}

// SetBSON implements bson.Setter.
func (priv *PrivateKey) SetBSON(raw bson.Raw) error {
	db := new(dbPrivateKey)
	if err := raw.Unmarshal(db); err != nil {
		return err
	}
	key, err := paillier.StringToKey(&paillier.KeyString{
		Type: paillier.KeyTypePrivate,
		Private: &paillier.PrivateKeyString{
			Type:   paillier.KeyTypePrivate,
			G:      db.G,
			P:      db.P,
			Q:      db.Q,
			PSq:    db.PSq,
			QSq:    db.QSq,
			PInv2w: db.PInv2w,
			QInv2w: db.QInv2w,
			HSubP:  db.HSubP,
			HSubQ:  db.HSubQ,
			QInv:   db.QInv,
		},
	})
	if err != nil {
		return err
	}
	*priv = PrivateKey(*key.(*paillier.PrivKey))
	return nil
}

type dbCounter struct {
	C string
}

// GetBSON implements bson.Getter.
func (c *Counter) GetBSON() (interface{}, error) {
	s, err := paillier.CounterToString((*paillier.Counter)(c))
	if err != nil {
		return nil, err
	}
	return &dbCounter{C: s}, nil
}

// SetBSON implements bson.Setter.
func (c *Counter) SetBSON(raw bson.Raw) error {
	db := new(dbCounter)
	if err := raw.Unmarshal(db); err != nil {
		return err
	}
	if db.C == "" {
		return errors.New("counter document missing its ciphertext field")
	}
	ctr, err := paillier.StringToCounter(db.C)
	if err != nil {
		return err
	}
	*c = Counter(*ctr)
	return nil
}
