package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	cases := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"Yes", "y\n", false, true},
		{"Yes long", "yes\n", false, true},
		{"Yes uppercase", "Y\n", false, true},
		{"No", "n\n", true, false},
		{"Empty takes default true", "\n", true, true},
		{"Empty takes default false", "\n", false, false},
		{"Garbage is no", "maybe\n", true, false},
		{"EOF is no", "", true, false},
		{"Answer without newline", "y", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirm(strings.NewReader(tc.input), &out, "Run now?", tc.def)
			if got != tc.want {
				t.Errorf("confirm(%q, default=%v) = %v, want %v", tc.input, tc.def, got, tc.want)
			}
			if !strings.Contains(out.String(), "Run now?") {
				t.Errorf("prompt text not rendered: %q", out.String())
			}
		})
	}

	t.Run("Default hint rendering", func(t *testing.T) {
		var out bytes.Buffer
		confirm(strings.NewReader("\n"), &out, "Run now?", true)
		if !strings.Contains(out.String(), "[Y/n]") {
			t.Errorf("expected [Y/n] hint, got %q", out.String())
		}

		out.Reset()
		confirm(strings.NewReader("\n"), &out, "Run now?", false)
		if !strings.Contains(out.String(), "[y/N]") {
			t.Errorf("expected [y/N] hint, got %q", out.String())
		}
	})
}
