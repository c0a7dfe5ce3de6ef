package source

import "testing"

func TestSpanEmpty(t *testing.T) {
	if !(Span{File: 1, Start: 5, End: 5}).Empty() {
		t.Error("expected zero-length span to be Empty")
	}
	if (Span{File: 1, Start: 5, End: 6}).Empty() {
		t.Error("expected non-zero-length span not to be Empty")
	}
}

func TestSpanLen(t *testing.T) {
	tests := []struct {
		span Span
		want uint32
	}{
		{Span{File: 1, Start: 10, End: 20}, 10},
		{Span{File: 1, Start: 5, End: 5}, 0},
		{Span{File: 2, Start: 0, End: 1000}, 1000},
	}
	for _, tt := range tests {
		if got := tt.span.Len(); got != tt.want {
			t.Errorf("Len() of %+v = %d, want %d", tt.span, got, tt.want)
		}
	}
}

func TestSpanString(t *testing.T) {
	got := Span{File: 3, Start: 10, End: 20}.String()
	want := "3:10-20"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
