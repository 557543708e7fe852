package paillier

import (
	"math/big"
	"testing"
)

func TestIncByAndDecBy(t *testing.T) {
	pub, priv := smallTestKey(t)

	ctr, err := Enc(pub, big.NewInt(10))
	if err != nil {
		t.Fatalf("Enc: %v", err)
	}
	if err := ctr.IncBy(pub, big.NewInt(5)); err != nil {
		t.Fatalf("IncBy: %v", err)
	}
	if got, err := Dec(priv, ctr); err != nil || got != 15 {
		t.Fatalf("after IncBy(5): got %d, err %v, want 15", got, err)
	}

	if err := ctr.DecBy(pub, big.NewInt(3)); err != nil {
		t.Fatalf("DecBy: %v", err)
	}
	if got, err := Dec(priv, ctr); err != nil || got != 12 {
		t.Fatalf("after DecBy(3): got %d, err %v, want 12", got, err)
	}
}

func TestIncByOneTakesGeneratorShortcut(t *testing.T) {
	pub, priv := smallTestKey(t)

	ctr, err := Enc(pub, big.NewInt(0))
	if err != nil {
		t.Fatalf("Enc: %v", err)
	}
	if err := ctr.IncBy(pub, one); err != nil {
		t.Fatalf("IncBy(1): %v", err)
	}
	if got, err := Dec(priv, ctr); err != nil || got != 1 {
		t.Fatalf("after IncBy(1): got %d, err %v, want 1", got, err)
	}
}

func TestDecByUnderflowsModN(t *testing.T) {
	pub, priv := smallTestKey(t)

	ctr, err := Enc(pub, big.NewInt(2))
	if err != nil {
		t.Fatalf("Enc: %v", err)
	}
	if err := ctr.DecBy(pub, big.NewInt(5)); err != nil {
		t.Fatalf("DecBy: %v", err)
	}
	want := new(big.Int).Mod(big.NewInt(2-5), pub.N).Uint64()
	if got, err := Dec(priv, ctr); err != nil || got != want {
		t.Fatalf("underflowed DecBy: got %d, err %v, want %d", got, err, want)
	}
}

func TestAddAndSubCounters(t *testing.T) {
	pub, priv := smallTestKey(t)

	a, err := Enc(pub, big.NewInt(20))
	if err != nil {
		t.Fatalf("Enc a: %v", err)
	}
	b, err := Enc(pub, big.NewInt(8))
	if err != nil {
		t.Fatalf("Enc b: %v", err)
	}

	if err := a.Add(pub, b); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got, err := Dec(priv, a); err != nil || got != 28 {
		t.Fatalf("after Add: got %d, err %v, want 28", got, err)
	}

	if err := a.Sub(pub, b); err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if got, err := Dec(priv, a); err != nil || got != 20 {
		t.Fatalf("after Sub: got %d, err %v, want 20", got, err)
	}
}

func TestMulBy(t *testing.T) {
	pub, priv := smallTestKey(t)

	ctr, err := Enc(pub, big.NewInt(6))
	if err != nil {
		t.Fatalf("Enc: %v", err)
	}
	if err := ctr.MulBy(pub, big.NewInt(7)); err != nil {
		t.Fatalf("MulBy: %v", err)
	}
	if got, err := Dec(priv, ctr); err != nil || got != 42 {
		t.Fatalf("after MulBy(7): got %d, err %v, want 42", got, err)
	}
}

func TestMulByRandomKeepsPlaintextInRange(t *testing.T) {
	pub, priv := smallTestKey(t)

	ctr, err := Enc(pub, big.NewInt(1))
	if err != nil {
		t.Fatalf("Enc: %v", err)
	}
	if err := ctr.MulByRandom(pub); err != nil {
		t.Fatalf("MulByRandom: %v", err)
	}
	got, err := Dec(priv, ctr)
	if err != nil {
		t.Fatalf("Dec: %v", err)
	}
	if got >= pub.N.Uint64() {
		t.Errorf("MulByRandom result %d outside [0, n)", got)
	}
}
