package output

import "testing"

func TestSanitizeForDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain ascii", "Isolate 1 ok\n", "Isolate 1 ok\n"},
		{"drops non-ascii", "caf\u00e9 \u2713 done", "caf  done"},
		{"drops invalid utf-8", "a\xffb\xc3", "ab"},
		{"newline escape", `line1\nline2`, "line1\nline2"},
		{"tab escape", `a\tb`, "a\tb"},
		{"escaped backslash", `C:\\tmp`, `C:\tmp`},
		{"quotes", `\'x\" `, `'x" `},
		{"hex escape", `\x41\x42`, "AB"},
		{"hex escape above ascii", `\xe9`, "\u00e9"},
		{"unicode escape", `\u0041\U00000042`, "AB"},
		{"octal escape", `\101`, "A"},
		{"single digit octal", `a\0b`, "a\x00b"},
		{"bell as octal", `\7`, "\a"},
		{"two digit octal", `\12`, "\n"},
		{"octal stops after three digits", `\1012`, "A2"},
		{"octal above one byte", `\777`, "\u01ff"},
		{"named escape", `\N{DIGIT ONE}`, "1"},
		{"named escape ignores case", `\N{latin small letter a}`, "a"},
		{"unknown name kept", `\N{NO SUCH CHARACTER}`, `\N{NO SUCH CHARACTER}`},
		{"unterminated name kept", `\N{DIGIT ONE`, `\N{DIGIT ONE`},
		{"bare N kept", `x\N`, `x\N`},
		{"line continuation", "a\\\nb", "ab"},
		{"unknown escape kept", `\q\8`, `\q\8`},
		{"short hex kept", `\x4`, `\x4`},
		{"trailing backslash kept", `end\`, `end\`},
		{"non-ascii removed before escapes", "\u00e9\\n", "\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeForDisplay(tt.input); got != tt.expected {
				t.Errorf("SanitizeForDisplay(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripNonASCII(t *testing.T) {
	t.Parallel()

	if got := stripNonASCII("a\u00e9b\xff"); got != "ab" {
		t.Errorf("stripNonASCII() = %q, want %q", got, "ab")
	}
}
