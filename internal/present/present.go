package present

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// FallbackWidth is used when the terminal size cannot be determined.
const FallbackWidth = 80

const (
	ansiReset   = "\x1b[0m"
	ansiReverse = "\x1b[7m"
	ansiBold    = "\x1b[1m"
)

// TerminalWidth returns the column count of the attached terminal, or
// FallbackWidth when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return FallbackWidth
	}
	return width
}

// Printer renders banners to a writer at a fixed column width.
type Printer struct {
	out      io.Writer
	width    int
	colorize bool
}

// NewPrinter returns a Printer writing to out. Widths below 20 columns are
// clamped so comparison banners stay legible.
func NewPrinter(out io.Writer, width int, colorize bool) *Printer {
	if width < 20 {
		width = 20
	}
	return &Printer{out: out, width: width, colorize: colorize}
}

// Width returns the printer's column width.
func (p *Printer) Width() int {
	return p.width
}

// Out returns the printer's destination writer.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Wrap splits s into lines of at most width runes, never splitting a
// multi-byte character. Concatenating the returned lines reproduces s.
func Wrap(s string, width int) []string {
	if width <= 0 || s == "" {
		return []string{s}
	}
	runes := []rune(s)
	lines := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[start:end]))
	}
	return lines
}

// CompareBanner prints left and right side by side, each truncated to half
// the printer width minus the separator, with an ellipsis marking truncation.
func (p *Printer) CompareBanner(left, right, sep string) {
	half := (p.width - runewidth.StringWidth(sep)) / 2
	l := runewidth.Truncate(left, half, "...")
	r := runewidth.Truncate(right, half, "...")
	fmt.Fprintf(p.out, "%s%s%s\n", runewidth.FillRight(l, half), sep, runewidth.FillLeft(r, half))
}

// SectionLabel prints a full-width rule, the centered title, and another rule.
func (p *Printer) SectionLabel(title string) {
	rule := strings.Repeat("-", p.width)
	pad := (p.width - runewidth.StringWidth(title)) / 2
	if pad < 0 {
		pad = 0
	}
	line := strings.Repeat(" ", pad) + title
	if p.colorize {
		line = ansiBold + line + ansiReset
	}
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, line)
	fmt.Fprintln(p.out, rule)
}

// Block prints a single highlighted line.
func (p *Printer) Block(text string) {
	if p.colorize {
		fmt.Fprintln(p.out, ansiReverse+" "+text+" "+ansiReset)
		return
	}
	fmt.Fprintln(p.out, "["+text+"]")
}
