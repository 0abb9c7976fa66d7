package helper

import "testing"

func TestNormalizeLibraryCode(t *testing.T) {
	cases := map[string]string{
		"demo":    "DEMO",
		"DEMO":    "DEMO",
		"Demo":    "DEMO",
		" demo ":  "DEMO",
		"lib-01":  "LIB-01",
		"":        "",
		"  	": "",
	}
	for in, want := range cases {
		if got := NormalizeLibraryCode(in); got != want {
			t.Errorf("NormalizeLibraryCode(%q) = %q, want %q", in, got, want)
		}
	}
}
