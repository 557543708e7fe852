package paillier

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicKeyStringRoundTrip(t *testing.T) {
	pub, _ := smallTestKey(t)

	ks, err := KeyToString(pub)
	if err != nil {
		t.Fatalf("KeyToString: %v", err)
	}
	if ks.Type != KeyTypePublic {
		t.Fatalf("KeyToString tagged %v, want %v", ks.Type, KeyTypePublic)
	}

	got, err := StringToKey(ks)
	if err != nil {
		t.Fatalf("StringToKey: %v", err)
	}
	gotPub, ok := got.(*PubKey)
	if !ok {
		t.Fatalf("StringToKey returned %T, want *PubKey", got)
	}
	if gotPub.N.Cmp(pub.N) != 0 || gotPub.G.Cmp(pub.G) != 0 || gotPub.NSquared.Cmp(pub.NSquared) != 0 {
		t.Error("round-tripped public key does not match original")
	}
}

func TestPrivateKeyStringRoundTrip(t *testing.T) {
	_, priv := smallTestKey(t)

	ks, err := KeyToString(priv)
	if err != nil {
		t.Fatalf("KeyToString: %v", err)
	}
	if ks.Type != KeyTypePrivate {
		t.Fatalf("KeyToString tagged %v, want %v", ks.Type, KeyTypePrivate)
	}

	got, err := StringToKey(ks)
	if err != nil {
		t.Fatalf("StringToKey: %v", err)
	}
	gotPriv, ok := got.(*PrivKey)
	if !ok {
		t.Fatalf("StringToKey returned %T, want *PrivKey", got)
	}
	for name, pair := range map[string][2]*big.Int{
		"g":      {gotPriv.G, priv.G},
		"p":      {gotPriv.P, priv.P},
		"q":      {gotPriv.Q, priv.Q},
		"p2":     {gotPriv.P2, priv.P2},
		"q2":     {gotPriv.Q2, priv.Q2},
		"pInv2w": {gotPriv.PInv2w, priv.PInv2w},
		"qInv2w": {gotPriv.QInv2w, priv.QInv2w},
		"hSubP":  {gotPriv.HSubP, priv.HSubP},
		"hSubQ":  {gotPriv.HSubQ, priv.HSubQ},
		"qInv":   {gotPriv.QInv, priv.QInv},
	} {
		if pair[0].Cmp(pair[1]) != 0 {
			t.Errorf("round-tripped field %s mismatch: got %v, want %v", name, pair[0], pair[1])
		}
	}
}

func TestCounterStringRoundTrip(t *testing.T) {
	pub, priv := smallTestKey(t)

	ctr, err := Enc(pub, big.NewInt(99))
	if err != nil {
		t.Fatalf("Enc: %v", err)
	}

	s, err := CounterToString(ctr)
	require.NoError(t, err)

	got, err := StringToCounter(s)
	require.NoError(t, err)
	require.Equal(t, PaillierV1, got.Version)

	m, err := Dec(priv, got)
	require.NoError(t, err)
	require.EqualValues(t, 99, m)
}

func TestFromHexRejectsMalformedInput(t *testing.T) {
	var tests = map[string]string{
		"empty":           "",
		"not hexadecimal": "not-hex!!",
	}
	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := fromHex(s); CodeOf(err) != DataError {
				t.Errorf("fromHex(%q) = %v, want DataError", s, err)
			}
		})
	}
}

func TestKeyStringJSONRoundTrip(t *testing.T) {
	pub, _ := smallTestKey(t)

	ks, err := KeyToString(pub)
	if err != nil {
		t.Fatalf("KeyToString: %v", err)
	}

	data, err := ks.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var roundTripped KeyString
	roundTripped.Type = KeyTypePublic
	if err := roundTripped.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if roundTripped.Public == nil || roundTripped.Public.N != ks.Public.N {
		t.Error("JSON round trip lost the public key fields")
	}
}
