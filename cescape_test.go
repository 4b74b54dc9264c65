package quotex

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestCEscape_Policy(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello world", "hello world"},
		{"say \"hi\"", `say \"hi\"`},
		{"line\n", `line\n`},
		{"tab\t", `tab\x09`},
		{"cr\r", `cr\x0d`},
		{"\x00\x7f\x80\xff", `\x00\x7f\x80\xff`},
		{`back\slash`, `back\slash`},
		{"~!@#$%^&*()_+`-={}|\\[]:;'<>,.?/", "~!@#$%^&*()_+`-={}|\\[]:;'<>,.?/"},
		{"caf\xc3\xa9", `caf\xc3\xa9`},
	}
	for _, tc := range cases {
		if got := CEscape(tc.in).String(); got != tc.want {
			t.Fatalf("CEscape(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCEscape_EveryByteIsPrintable(t *testing.T) {
	out := CEscapeBytes(allBytes()).String()
	for i := 0; i < len(out); i++ {
		if out[i] < 0x20 || out[i] > 0x7e {
			t.Fatalf("non-printable byte %#x at %d in %q", out[i], i, out)
		}
	}
	// 62 alphanumerics, space, 31 punctuation bytes, plus the two short
	// escapes and 160 \xHH escapes.
	if want := 94 + 2*2 + 160*4; len(out) != want {
		t.Fatalf("unexpected escaped length %d, want %d", len(out), want)
	}
}

func TestCEscape_Unambiguous(t *testing.T) {
	seen := make(map[string]byte, 256)
	for _, b := range allBytes() {
		form := CEscape([]byte{b}).String()
		if prev, ok := seen[form]; ok {
			t.Fatalf("bytes %#x and %#x both escape to %q", prev, b, form)
		}
		seen[form] = b
		got, ok := unescapeC(form)
		if !ok || len(got) != 1 || got[0] != b {
			t.Fatalf("escape %q of %#x does not decode back", form, b)
		}
	}
}

func TestCEscape_Ordering(t *testing.T) {
	keys := []CEscape{CEscapeBytes([]byte{0xff}), "b", "a\x00", "a"}
	slices.SortFunc(keys, CEscape.Compare)
	want := []CEscape{"a", "a\x00", "b", "\xff"}
	if !slices.Equal(keys, want) {
		t.Fatalf("unexpected order %q", keys)
	}

	m := map[CEscape]int{CEscapeBytes([]byte("k\n")): 1}
	if m["k\n"] != 1 {
		t.Fatalf("equal bytes must be the same map key")
	}
	if CEscape("x").Compare("x") != 0 {
		t.Fatalf("expected equal compare")
	}
}

func TestCEscape_BytesCopied(t *testing.T) {
	src := []byte("abc")
	c := CEscapeBytes(src)
	src[0] = '"'
	if c.String() != "abc" {
		t.Fatalf("CEscape must not observe later changes to the source slice")
	}
}

func TestCEscape_WriteError(t *testing.T) {
	if _, err := CEscape("a\x01").WriteTo(errWriter{}); !errors.Is(err, errWrite) {
		t.Fatalf("expected write error, got %v", err)
	}
	lw := &limitWriter{limit: 3}
	n, err := CEscape("ab\x01cd").WriteTo(lw)
	if !errors.Is(err, errWrite) || n != 3 || lw.String() != `ab\` {
		t.Fatalf("unexpected partial render n=%d err=%v out=%q", n, err, lw.String())
	}
}

// unescapeC decodes the four CEscape output shapes of a single byte.
func unescapeC(s string) ([]byte, bool) {
	var out []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			out = append(out, c)
			continue
		}
		switch s[i+1] {
		case '"':
			out = append(out, '"')
			i++
		case 'n':
			out = append(out, '\n')
			i++
		case 'x':
			if i+3 >= len(s) {
				return nil, false
			}
			hi := strings.IndexByte(lowerHex, s[i+2])
			lo := strings.IndexByte(lowerHex, s[i+3])
			if hi < 0 || lo < 0 {
				return nil, false
			}
			out = append(out, byte(hi<<4|lo))
			i += 3
		default:
			out = append(out, c)
		}
	}
	return out, true
}
