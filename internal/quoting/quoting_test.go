package quoting

import "testing"

func TestEscapeString(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"O'Brien", "O''Brien"},
		{`back\slash`, `back\\slash`},
		{`both\'`, `both\\''`},
	}
	for _, c := range cases {
		if got := EscapeString(c.in); got != c.want {
			t.Errorf("EscapeString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
