package wizard

import (
	"bufio"
	"strings"
	"testing"
)

func newScriptedTerminal(input string) (*TerminalPrompter, *strings.Builder) {
	var out strings.Builder
	p := &TerminalPrompter{in: bufio.NewReader(strings.NewReader(input)), out: &out}
	return p, &out
}

func TestTerminalSelectParsesChoice(t *testing.T) {
	p, _ := newScriptedTerminal("2\n")
	choice, err := p.Select("Pick", []string{"a", "b", "c"}, 0)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if choice != 1 {
		t.Fatalf("expected index 1, got %d", choice)
	}
}

func TestTerminalSelectEmptyLineTakesDefault(t *testing.T) {
	p, _ := newScriptedTerminal("\n")
	choice, err := p.Select("Pick", []string{"a", "b"}, 1)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if choice != 1 {
		t.Fatalf("expected default index 1, got %d", choice)
	}
}

func TestTerminalSelectRepromptsOnBadInput(t *testing.T) {
	p, out := newScriptedTerminal("9\nfirst\n1\n")
	choice, err := p.Select("Pick", []string{"a", "b"}, 0)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if choice != 0 {
		t.Fatalf("expected index 0, got %d", choice)
	}
	if !strings.Contains(out.String(), "between 1 and 2") {
		t.Fatalf("expected range hint, got %q", out.String())
	}
}

func TestTerminalSelectErrorsOnClosedInput(t *testing.T) {
	p, _ := newScriptedTerminal("")
	if _, err := p.Select("Pick", []string{"a"}, 0); err == nil {
		t.Fatal("expected error when input is exhausted")
	}
}

func TestTerminalInputDefaultAndValue(t *testing.T) {
	p, out := newScriptedTerminal("\ncustom\n")

	got, err := p.Input("Server name", "bender")
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	if got != "bender" {
		t.Fatalf("expected default, got %q", got)
	}
	if !strings.Contains(out.String(), "[bender]") {
		t.Fatalf("expected default shown in prompt, got %q", out.String())
	}

	got, err = p.Input("Server name", "bender")
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	if got != "custom" {
		t.Fatalf("expected typed value, got %q", got)
	}
}

func TestTerminalInputAcceptsFinalLineWithoutNewline(t *testing.T) {
	p, _ := newScriptedTerminal("no-newline")
	got, err := p.Input("Value", "")
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	if got != "no-newline" {
		t.Fatalf("unexpected value: %q", got)
	}
}
