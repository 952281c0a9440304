package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when the wizard is started without an
// interactive terminal. The wizard cannot degrade gracefully; the CLI
// boundary reports it and exits non-zero.
var ErrNotInteractive = errors.New("an interactive terminal is required")

// Prompter collects operator decisions. Tests substitute a scripted
// implementation so wizard runs never touch a real terminal.
type Prompter interface {
	// Select presents numbered options and returns the chosen index.
	// def is returned when the operator accepts the default with an
	// empty line.
	Select(label string, options []string, def int) (int, error)
	// Input reads one line of free text; an empty line yields def.
	Input(label, def string) (string, error)
}

// TerminalPrompter reads operator decisions from an interactive terminal.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter wires the prompter to stdin/stdout. It fails with
// ErrNotInteractive when either side is not a terminal.
func NewTerminalPrompter() (*TerminalPrompter, error) {
	if !isTerminal(os.Stdin.Fd()) {
		return nil, fmt.Errorf("stdin: %w", ErrNotInteractive)
	}
	if !isTerminal(os.Stdout.Fd()) {
		return nil, fmt.Errorf("stdout: %w", ErrNotInteractive)
	}
	return &TerminalPrompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Select prints a numbered menu and re-prompts until a valid choice arrives.
func (p *TerminalPrompter) Select(label string, options []string, def int) (int, error) {
	fmt.Fprintln(p.out, label)
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, option)
	}
	for {
		fmt.Fprintf(p.out, "Choice [%d]: ", def+1)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintf(p.out, "Enter a number between 1 and %d.\n", len(options))
			continue
		}
		return choice - 1, nil
	}
}

// Input reads one line of free text, substituting def for an empty line.
func (p *TerminalPrompter) Input(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
