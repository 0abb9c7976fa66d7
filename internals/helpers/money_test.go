package helper

import (
	"encoding/json"
	"testing"
)

func TestMoneyUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "number", in: `1000`, want: "1000"},
		{name: "decimal number", in: `599.5`, want: "599.5"},
		{name: "numeric string", in: `"400"`, want: "400"},
		{name: "empty string is zero", in: `""`, want: "0"},
		{name: "null is zero", in: `null`, want: "0"},
		{name: "padded string", in: `" 250 "`, want: "250"},
		{name: "garbage string rejected", in: `"abc"`, wantErr: true},
		{name: "mixed garbage rejected", in: `"12x"`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m Money
			err := json.Unmarshal([]byte(tc.in), &m)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s, got %s", tc.in, m.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if m.String() != tc.want {
				t.Fatalf("got %s, want %s", m.String(), tc.want)
			}
		})
	}
}

func TestMoneyMarshal(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`"600.50"`), &m); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "600.5" {
		t.Fatalf("got %s", out)
	}
}
