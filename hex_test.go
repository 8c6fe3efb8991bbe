package decint

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
	"testing"
)

func TestParseHex(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s, want string
		}{
			{"0", "0"},
			{"00", "0"},
			{"1", "1"},
			{"9", "9"},
			{"A", "10"},
			{"B", "11"},
			{"D", "13"},
			{"F", "15"},
			{"10", "16"},
			{"FF", "255"},
			{"0FF", "255"},
			{"1A3F", "6719"},
			{"10001", "65537"},
			{"FFFFFFFFFFFFFFFF", "18446744073709551615"},
			{"10000000000000000", "18446744073709551616"},
			{"DEADBEEFCAFEBABE0123456789", "17642423813161689323077271644041"},
		}
		for _, tt := range tests {
			got, err := ParseHex(tt.s)
			if err != nil {
				t.Errorf("ParseHex(%q) failed: %v", tt.s, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("ParseHex(%q) = %q, want %q", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":     "",
			"lowercase": "1a3f",
			"letter":    "G",
			"prefix":    "0x1A",
			"sign":      "-1A",
			"space":     "1A ",
			"newline":   "1A\n",
			"non-ascii": "１",
		}
		for name, s := range tests {
			_, err := ParseHex(s)
			if !errors.Is(err, ErrInvalidHex) {
				t.Errorf("ParseHex(%q) failed with %v, want %v (%v)", s, err, ErrInvalidHex, name)
			}
		}
	})
}

func TestMustParseHex(t *testing.T) {
	if got := MustParseHex("B"); !got.Equal(New(11)) {
		t.Errorf("MustParseHex(\"B\") = %q, want 11", got)
	}
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseHex(\"b\") did not panic")
			}
		}()
		MustParseHex("b")
	})
}

func TestInt_Hex(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"10", "A"},
		{"15", "F"},
		{"16", "10"},
		{"103", "67"},
		{"255", "FF"},
		{"256", "100"},
		{"6719", "1A3F"},
		{"-6719", "-1A3F"},
		{"18446744073709551616", "10000000000000000"},
		{"17642423813161689323077271644041", "DEADBEEFCAFEBABE0123456789"},
	}
	for _, tt := range tests {
		x := MustParse(tt.x)
		got := x.Hex()
		if got != tt.want {
			t.Errorf("%q.Hex() = %q, want %q", x, got, tt.want)
		}
	}
}

func FuzzParseHex(f *testing.F) {
	for _, x := range corpus {
		if x >= 0 {
			f.Add(strings.ToUpper(strconv.FormatInt(x, 16)))
		}
	}
	f.Add("1A3F")
	f.Add("1a3f")

	f.Fuzz(
		func(t *testing.T, s string) {
			x, err := ParseHex(s)
			valid := s != "" && strings.Trim(s, hexDigits) == ""
			switch {
			case err != nil && valid:
				t.Errorf("ParseHex(%q) failed: %v", s, err)
			case err == nil && !valid:
				t.Errorf("ParseHex(%q) = %q, want error", s, x)
			case err == nil:
				want, _ := new(big.Int).SetString(s, 16)
				if x.String() != want.String() {
					t.Errorf("ParseHex(%q) = %q, want %q", s, x, want)
				}
			}
		},
	)
}

func FuzzInt_Hex(f *testing.F) {
	for _, x := range corpus {
		for _, y := range corpus {
			f.Add(x, y)
		}
	}

	f.Fuzz(
		func(t *testing.T, a, b int64) {
			x := wide(a, b)
			got := x.Hex()

			want := strings.ToUpper(bigOf(t, x).Text(16))
			if got != want {
				t.Errorf("%q.Hex() = %q, want %q", x, got, want)
			}

			y, err := ParseHex(strings.TrimPrefix(got, "-"))
			if err != nil {
				t.Errorf("ParseHex(%q) failed: %v", got, err)
				return
			}
			if !y.Equal(x.Abs()) {
				t.Errorf("ParseHex(%q) = %q, want %q", got, y, x.Abs())
			}
		},
	)
}
