package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalizedPoint_JSONNaNIsNull(t *testing.T) {
	b, err := json.Marshal([]NormalizedPoint{{Timestamp: 1000, Valor: 1.5}, {Timestamp: 2000, Valor: math.NaN()}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"timestamp":1000,"valor":1.5},{"timestamp":2000,"valor":null}]`
	if string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}

	var back []NormalizedPoint
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[0].Valor != 1.5 || !math.IsNaN(back[1].Valor) {
		t.Fatalf("unexpected round trip: %+v", back)
	}
}

func TestNormalizedPoint_Pair(t *testing.T) {
	p := NormalizedPoint{Timestamp: 50000, Valor: 2.2}.Pair()
	if p[0] != int64(50000) || p[1] != 2.2 {
		t.Fatalf("unexpected pair %v", p)
	}
	if p := (NormalizedPoint{Timestamp: 1, Valor: math.Inf(1)}).Pair(); p[1] != nil {
		t.Fatalf("infinite value should be nil, got %v", p[1])
	}
}
