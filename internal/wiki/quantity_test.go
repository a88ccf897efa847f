package wiki

import "testing"

func TestSplitQuantityNameShapes(t *testing.T) {
	tests := []struct {
		in       string
		wantQty  int
		wantName string
	}{
		{in: "10x Plank", wantQty: 10, wantName: "Plank"},
		{in: "Plank x10", wantQty: 10, wantName: "Plank"},
		{in: "Plank (10)", wantQty: 10, wantName: "Plank"},
		{in: "10 Plank", wantQty: 10, wantName: "Plank"},
		{in: "  10X  Plank  ", wantQty: 10, wantName: "Plank"},
		{in: "6x Calibrated Servoks", wantQty: 6, wantName: "Calibrated Servoks"},
	}
	for _, tc := range tests {
		qty, name, ok := SplitQuantityName(tc.in)
		if !ok {
			t.Fatalf("SplitQuantityName(%q) did not match", tc.in)
		}
		if qty != tc.wantQty || name != tc.wantName {
			t.Fatalf("SplitQuantityName(%q)=(%d,%q) want=(%d,%q)", tc.in, qty, name, tc.wantQty, tc.wantName)
		}
	}
}

func TestSplitQuantityNameRejectsUnshapedText(t *testing.T) {
	for _, in := range []string{"", "Plank", "requires some planks"} {
		if qty, name, ok := SplitQuantityName(in); ok {
			t.Fatalf("SplitQuantityName(%q) matched unexpectedly: (%d,%q)", in, qty, name)
		}
	}
}
