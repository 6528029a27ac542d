package testutil

import "testing"

func TestAmount(t *testing.T) {
	p := Amount(MidAmount)
	if p == nil || *p != MidAmount {
		t.Fatalf("Amount(%v) = %v", MidAmount, p)
	}
	if Amount(1) == Amount(1) {
		t.Fatal("Amount must return distinct pointers")
	}
}

func TestAssertTwoDecimals(t *testing.T) {
	for _, s := range []float64{0, 0.1, 0.55, 0.99, 1} {
		if !AssertTwoDecimals(t, s) {
			t.Fatalf("AssertTwoDecimals(%v) = false", s)
		}
	}
}

func TestRequireScoreInBand(t *testing.T) {
	RequireScoreInBand(t, 0.5, 0.4, 0.6)
	RequireScoreInBand(t, 0.9, 0.9, 1.0)
}
