package symtab

import "testing"

func TestIntSetInsertContains(t *testing.T) {
	s := NewIntSet()
	if s.Contains(42) {
		t.Fatalf("empty set must not contain 42")
	}
	s.Insert(42)
	if !s.Contains(42) {
		t.Fatalf("set must contain 42 after Insert")
	}
	if s.Contains(43) {
		t.Fatalf("set must not contain a key never inserted")
	}
}

func TestIntSetNegativeKeys(t *testing.T) {
	s := NewIntSet()
	s.Insert(-7)
	s.Insert(0)
	s.Insert(7)

	for _, k := range []int64{-7, 0, 7} {
		if !s.Contains(k) {
			t.Fatalf("set must contain %d", k)
		}
	}
	if s.Contains(-8) || s.Contains(8) {
		t.Fatalf("set must not contain neighbouring keys never inserted")
	}
}

func TestIntSetGrowthPreservesMembership(t *testing.T) {
	s := NewIntSet()
	keys := make([]int64, 0, 2000)
	for i := int64(-1000); i < 1000; i++ {
		keys = append(keys, i*trunkBits+1) // spread across many distinct trunks
	}
	for _, k := range keys {
		s.Insert(k)
	}
	for _, k := range keys {
		if !s.Contains(k) {
			t.Fatalf("Contains(%d) = false after growth, want true", k)
		}
	}
}

func TestIntSetIterateVisitsEverySetBit(t *testing.T) {
	s := NewIntSet()
	want := map[int64]bool{-5: true, 0: true, 5: true, 1000: true}
	for k := range want {
		s.Insert(k)
	}

	got := map[int64]bool{}
	s.Iterate(func(k int64) { got[k] = true })

	if len(got) != len(want) {
		t.Fatalf("Iterate visited %d bits, want %d", len(got), len(want))
	}
	for k := range want {
		if !got[k] {
			t.Fatalf("Iterate did not visit %d", k)
		}
	}
}
