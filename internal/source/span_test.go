package source

import (
	"testing"
)

func TestSpan_FromBoundsAndEnd(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		wantLen    int
	}{
		{name: "regular", start: 3, end: 10, wantLen: 7},
		{name: "empty", start: 5, end: 5, wantLen: 0},
		{name: "at zero", start: 0, end: 1, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := FromBounds(tt.start, tt.end)
			if sp.Start != tt.start || sp.Length != tt.wantLen {
				t.Fatalf("FromBounds(%d, %d) = %+v, want start=%d len=%d", tt.start, tt.end, sp, tt.start, tt.wantLen)
			}
			if sp.End() != tt.end {
				t.Fatalf("End() = %d, want %d", sp.End(), tt.end)
			}
			if sp.Empty() != (tt.wantLen == 0) {
				t.Fatalf("Empty() = %v for %+v", sp.Empty(), sp)
			}
		})
	}
}

func TestSpan_String(t *testing.T) {
	if got := NewSpan(4, 3).String(); got != "4..7" {
		t.Fatalf("String() = %q, want %q", got, "4..7")
	}
	if got := NewSpan(0, 0).String(); got != "0..0" {
		t.Fatalf("String() = %q, want %q", got, "0..0")
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{name: "disjoint", a: NewSpan(0, 2), b: NewSpan(5, 3), want: FromBounds(0, 8)},
		{name: "reversed", a: NewSpan(5, 3), b: NewSpan(0, 2), want: FromBounds(0, 8)},
		{name: "nested", a: NewSpan(0, 10), b: NewSpan(2, 2), want: NewSpan(0, 10)},
		{name: "empty inside", a: NewSpan(3, 4), b: NewSpan(5, 0), want: NewSpan(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Fatalf("Cover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	sp := NewSpan(2, 3)
	for pos, want := range map[int]bool{1: false, 2: true, 4: true, 5: false} {
		if got := sp.Contains(pos); got != want {
			t.Errorf("Contains(%d) = %v, want %v", pos, got, want)
		}
	}
}
