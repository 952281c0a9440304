package wizard

import (
	"fmt"
)

// compareSeparator joins the two sides of a value comparison banner.
const compareSeparator = " != "

// differ resolves one leaf field. With no candidate the current value is the
// proposed default and the operator may keep or override it. With a candidate
// that equals current the value passes through silently. Otherwise both
// values are shown side by side and the operator picks one or overrides.
func (w *Wizard) differ(label string, current Value, candidate *Value) (Value, error) {
	if candidate == nil {
		w.printer.Block(fmt.Sprintf("%s -> %s", label, current))
		choice, err := w.prompter.Select(label, []string{"Keep default", "Manual override"}, 0)
		if err != nil {
			return Value{}, err
		}
		if choice == 1 {
			return w.manualOverride(label, current)
		}
		return current, nil
	}

	if current.Equal(*candidate) {
		return current, nil
	}

	w.printer.CompareBanner(current.String(), candidate.String(), compareSeparator)
	choice, err := w.prompter.Select(label, []string{
		current.String(),
		candidate.String(),
		"Manual override",
	}, 0)
	if err != nil {
		return Value{}, err
	}
	switch choice {
	case 1:
		return *candidate, nil
	case 2:
		return w.manualOverride(label, current)
	default:
		return current, nil
	}
}

// manualOverride reads and parses a replacement value, re-prompting in place
// until the input parses. The current value is offered as the editable
// default.
func (w *Wizard) manualOverride(label string, current Value) (Value, error) {
	for {
		input, err := w.prompter.Input(label, current.String())
		if err != nil {
			return Value{}, err
		}
		value, err := current.Parse(input)
		if err != nil {
			fmt.Fprintf(w.printer.Out(), "Invalid value: %v\n", err)
			continue
		}
		return value, nil
	}
}
