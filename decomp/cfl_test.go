package decomp

import (
	"reflect"
	"testing"
)

func TestCFLInvariants(t *testing.T) {
	inputs := []struct {
		s string
		p int
	}{
		{"aabbcc", 5},
		{"abba", 4},
		{"aabb", 3},
		{"abcabc", 6},
		{"aaaa", 2},
	}
	for _, in := range inputs {
		cands := CFL(in.s, in.p, DefaultCFLLimit)
		if len(cands) > DefaultCFLLimit {
			t.Fatalf("CFL(%q,%d) returned %d candidates, cap is %d",
				in.s, in.p, len(cands), DefaultCFLLimit)
		}
		for i, d := range cands {
			if d.Join() != in.s {
				t.Errorf("CFL(%q,%d)[%d]: u+v+w+x+y = %q, want %q", in.s, in.p, i, d.Join(), in.s)
			}
			if len(d.V)+len(d.X) == 0 {
				t.Errorf("CFL(%q,%d)[%d]: empty vx", in.s, in.p, i)
			}
			if len(d.V)+len(d.W)+len(d.X) > in.p {
				t.Errorf("CFL(%q,%d)[%d]: |vwx| = %d exceeds p",
					in.s, in.p, i, len(d.V)+len(d.W)+len(d.X))
			}
		}
	}
}

// TestCFLTruncationIsPrefix: the capped list must be a prefix of the
// uncapped canonical enumeration, never an arbitrary subset.
func TestCFLTruncationIsPrefix(t *testing.T) {
	s, p := "aabbccdd", 6
	capped := CFL(s, p, DefaultCFLLimit)
	full := CFL(s, p, 100000)
	if len(capped) != DefaultCFLLimit {
		t.Fatalf("capped enumeration returned %d candidates, want %d", len(capped), DefaultCFLLimit)
	}
	if !reflect.DeepEqual(capped, full[:DefaultCFLLimit]) {
		t.Error("capped enumeration is not a prefix of the canonical order")
	}
}

// TestCFLOrder pins the first candidates of the canonical order for a
// known input: window start ascending, window end ascending, then the v
// and x boundaries.
func TestCFLOrder(t *testing.T) {
	got := CFL("abba", 4, DefaultCFLLimit)
	want := []UVWXY{
		{U: "", V: "a", W: "", X: "b", Y: "ba"},
		{U: "", V: "a", W: "", X: "bb", Y: "a"},
		{U: "", V: "a", W: "b", X: "b", Y: "a"},
		{U: "", V: "ab", W: "", X: "b", Y: "a"},
		{U: "", V: "a", W: "", X: "bba", Y: ""},
		{U: "", V: "a", W: "b", X: "ba", Y: ""},
		{U: "", V: "a", W: "bb", X: "a", Y: ""},
		{U: "", V: "ab", W: "", X: "ba", Y: ""},
		{U: "", V: "ab", W: "b", X: "a", Y: ""},
		{U: "", V: "abb", W: "", X: "a", Y: ""},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestCFLSingleCharWindows: windows of length 1 admit no (v, x) split
// with both nonempty, so a pumping length of 1 yields no candidates.
func TestCFLSingleCharWindows(t *testing.T) {
	if got := CFL("abab", 1, DefaultCFLLimit); len(got) != 0 {
		t.Errorf("CFL with p=1 produced %d candidates, want 0", len(got))
	}
}

func TestCFLDegenerate(t *testing.T) {
	if got := CFL("", 3, DefaultCFLLimit); len(got) != 0 {
		t.Errorf("CFL on empty string produced %d candidates", len(got))
	}
	if got := CFL("abc", 0, DefaultCFLLimit); len(got) != 0 {
		t.Errorf("CFL with p=0 produced %d candidates", len(got))
	}
}

func TestCFLDefaultLimit(t *testing.T) {
	// limit <= 0 means DefaultCFLLimit.
	if got := CFL("aabbccdd", 6, 0); len(got) != DefaultCFLLimit {
		t.Errorf("CFL with limit 0 returned %d candidates, want %d", len(got), DefaultCFLLimit)
	}
}

func TestUVWXYPump(t *testing.T) {
	d := UVWXY{U: "a", V: "b", W: "c", X: "d", Y: "e"}
	tests := []struct {
		i    int
		want string
	}{
		{0, "ace"},
		{1, "abcde"},
		{2, "abbcdde"},
		{3, "abbbcddde"},
	}
	for _, tt := range tests {
		if got := d.Pump(tt.i); got != tt.want {
			t.Errorf("Pump(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestUVWXYInfo(t *testing.T) {
	d := UVWXY{U: "", V: "a", W: "bb", X: "a", Y: ""}
	if got := d.Info(); got != "|vwx| = 4, |vx| = 2" {
		t.Errorf("Info() = %q", got)
	}
}
