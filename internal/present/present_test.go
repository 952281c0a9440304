package present

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapReassemblesInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		width int
	}{
		{"ascii exact multiple", "abcdefghij", 5},
		{"ascii remainder", "abcdefg", 3},
		{"multibyte", "Grüße aus Köln, Rechnerfarm Nr. 3", 4},
		{"single rune lines", "日本語テスト", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines := Wrap(tc.input, tc.width)
			if got := strings.Join(lines, ""); got != tc.input {
				t.Fatalf("concatenated lines mismatch: got %q want %q", got, tc.input)
			}
			for _, line := range lines {
				if n := len([]rune(line)); n > tc.width {
					t.Fatalf("line %q exceeds width %d", line, tc.width)
				}
			}
		})
	}
}

func TestWrapZeroWidthReturnsInput(t *testing.T) {
	lines := Wrap("unchanged", 0)
	if len(lines) != 1 || lines[0] != "unchanged" {
		t.Fatalf("unexpected result: %v", lines)
	}
}

func TestCompareBannerRespectsHalfWidth(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf, 40, false)
	long := strings.Repeat("x", 100)
	p.CompareBanner(long, "short", " != ")

	line := strings.TrimRight(buf.String(), "\n")
	half := (40 - runewidth.StringWidth(" != ")) / 2
	parts := strings.SplitN(line, " != ", 2)
	if len(parts) != 2 {
		t.Fatalf("separator missing from banner %q", line)
	}
	if w := runewidth.StringWidth(parts[0]); w > half {
		t.Fatalf("left side width %d exceeds %d", w, half)
	}
	if w := runewidth.StringWidth(strings.TrimLeft(parts[1], " ")); w > half {
		t.Fatalf("right side width %d exceeds %d", w, half)
	}
	if !strings.Contains(parts[0], "...") {
		t.Fatal("expected ellipsis on truncated side")
	}
}

func TestSectionLabelPrintsRules(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf, 30, false)
	p.SectionLabel("Paths")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != strings.Repeat("-", 30) || lines[2] != lines[0] {
		t.Fatalf("unexpected rules: %q / %q", lines[0], lines[2])
	}
	if !strings.Contains(lines[1], "Paths") {
		t.Fatalf("title missing: %q", lines[1])
	}
}

func TestBlockWithoutColor(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf, 80, false)
	p.Block("Existing value")
	if got := buf.String(); got != "[Existing value]\n" {
		t.Fatalf("unexpected block output: %q", got)
	}
}
