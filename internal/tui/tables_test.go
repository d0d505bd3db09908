package tui

import (
	"strings"
	"testing"
)

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		w    int
		want string
	}{
		{"short", 10, "short"},
		{"exact", 5, "exact"},
		{"overflowing", 6, "overf…"},
		{"multi\nline value", 20, "multi line value"},
		{"anything", 0, ""},
		{"anything", 1, "…"},
	}
	for _, tc := range cases {
		if got := truncateToWidth(tc.in, tc.w); got != tc.want {
			t.Errorf("truncateToWidth(%q, %d) = %q; want %q", tc.in, tc.w, got, tc.want)
		}
	}
}

func TestRenderRowsAlignsColumns(t *testing.T) {
	setAsciiProfile(t)

	out := renderRows(
		[]string{"ID", "Component"},
		[]int{6, 10},
		[][]string{
			{"INC-1", "Gateway"},
			{"INC-22", "A very long component name"},
		},
	)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines; got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "…") {
		t.Fatalf("overlong cell not truncated: %q", lines[2])
	}
	if !strings.HasPrefix(lines[1], "INC-1 ") {
		t.Fatalf("cell not padded: %q", lines[1])
	}
}
