package wizard

import (
	"fmt"

	"bender/internal/config"
	"bender/internal/present"
)

// Wizard drives one interactive configuration session. Sessions are strictly
// synchronous: one prompt at a time, one operator, no shared state.
type Wizard struct {
	prompter Prompter
	printer  *present.Printer
}

// New returns a wizard using the given prompter and printer.
func New(prompter Prompter, printer *present.Printer) *Wizard {
	return &Wizard{prompter: prompter, printer: printer}
}

// Ask builds a configuration document from repository defaults, walking every
// field through the keep/override dialog.
func (w *Wizard) Ask() (*config.Config, error) {
	defaults := config.Default()
	return w.Reconcile(&defaults, nil)
}

// Reconcile walks the document field by field, comparing current against
// candidate and assembling a fresh document from the operator's choices.
// A nil candidate puts every field on the keep/override path instead.
// Generated fields are recomputed without a prompt.
func (w *Wizard) Reconcile(current *config.Config, candidate *config.Config) (*config.Config, error) {
	result := *current

	w.printer.Block(fmt.Sprintf("Configuring %s", current.ServerName))
	for _, field := range topLevelFields() {
		if err := w.reconcileField(field, current, candidate, &result); err != nil {
			return nil, err
		}
	}

	for _, section := range documentSections() {
		w.printer.SectionLabel(section.title)
		for _, field := range section.fields {
			if err := w.reconcileField(field, current, candidate, &result); err != nil {
				return nil, err
			}
		}
	}

	return &result, nil
}

func (w *Wizard) reconcileField(field fieldSpec, current, candidate, result *config.Config) error {
	if field.fresh != nil {
		field.fresh(current, result)
		return nil
	}

	cur := field.get(current)
	var cand *Value
	if candidate != nil {
		value := field.get(candidate)
		cand = &value
	}

	value, err := w.differ(field.label, cur, cand)
	if err != nil {
		return err
	}
	field.set(result, value)
	return nil
}
