package wizard_test

import (
	"strings"
	"testing"

	"bender/internal/config"
	"bender/internal/present"
	"bender/internal/wizard"
)

// scriptPrompter feeds canned answers to the wizard. Exhausted scripts fall
// back to the prompt defaults, mirroring an operator who keeps pressing
// enter.
type scriptPrompter struct {
	selects     []int
	inputs      []string
	selectCalls int
	inputCalls  int
}

func (p *scriptPrompter) Select(label string, options []string, def int) (int, error) {
	p.selectCalls++
	if len(p.selects) == 0 {
		return def, nil
	}
	choice := p.selects[0]
	p.selects = p.selects[1:]
	return choice, nil
}

func (p *scriptPrompter) Input(label, def string) (string, error) {
	p.inputCalls++
	if len(p.inputs) == 0 {
		return def, nil
	}
	input := p.inputs[0]
	p.inputs = p.inputs[1:]
	if input == "" {
		return def, nil
	}
	return input, nil
}

// failPrompter fails the test on any interaction.
type failPrompter struct {
	t *testing.T
}

func (p *failPrompter) Select(label string, options []string, def int) (int, error) {
	p.t.Fatalf("unexpected Select for %q", label)
	return 0, nil
}

func (p *failPrompter) Input(label, def string) (string, error) {
	p.t.Fatalf("unexpected Input for %q", label)
	return "", nil
}

func newTestWizard(p wizard.Prompter) (*wizard.Wizard, *strings.Builder) {
	var buf strings.Builder
	return wizard.New(p, present.NewPrinter(&buf, 80, false)), &buf
}

func TestReconcileEqualCandidatePromptsNothing(t *testing.T) {
	current := config.Default()
	candidate := current

	w, _ := newTestWizard(&failPrompter{t: t})
	result, err := w.Reconcile(&current, &candidate)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.Worker.ID == current.Worker.ID {
		t.Fatal("worker id must be regenerated, never preserved")
	}
	if result.Worker.ID == "" {
		t.Fatal("worker id must not be empty")
	}
	if result.Paths.Config != current.Paths.Config {
		t.Fatalf("config path must be carried over, got %q", result.Paths.Config)
	}

	got := *result
	got.Worker.ID = current.Worker.ID
	if got != current {
		t.Fatalf("reconcile of identical documents changed fields:\n got %+v\nwant %+v", got, current)
	}
}

func TestReconcileUseCandidate(t *testing.T) {
	current := config.Default()
	current.Janitor.IntervalSeconds = 60
	candidate := current
	candidate.Janitor.IntervalSeconds = 120

	p := &scriptPrompter{selects: []int{1}}
	w, out := newTestWizard(p)
	result, err := w.Reconcile(&current, &candidate)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.Janitor.IntervalSeconds != 120 {
		t.Fatalf("expected candidate value 120, got %d", result.Janitor.IntervalSeconds)
	}
	if p.selectCalls != 1 {
		t.Fatalf("expected exactly one prompt, got %d", p.selectCalls)
	}
	if !strings.Contains(out.String(), "!=") {
		t.Fatal("expected a comparison banner for the differing field")
	}
}

func TestReconcileUseCurrent(t *testing.T) {
	current := config.Default()
	current.ServerName = "farm-east"
	candidate := current
	candidate.ServerName = "farm-west"

	p := &scriptPrompter{selects: []int{0}}
	w, _ := newTestWizard(p)
	result, err := w.Reconcile(&current, &candidate)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.ServerName != "farm-east" {
		t.Fatalf("expected current value, got %q", result.ServerName)
	}
	if p.selectCalls != 1 {
		t.Fatalf("expected exactly one prompt, got %d", p.selectCalls)
	}
}

func TestManualOverrideRepromptsOnParseFailure(t *testing.T) {
	current := config.Default()
	current.Server.Port = 8000
	candidate := current
	candidate.Server.Port = 8443

	p := &scriptPrompter{
		selects: []int{2},
		inputs:  []string{"eight thousand", "9090"},
	}
	w, out := newTestWizard(p)
	result, err := w.Reconcile(&current, &candidate)
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.Server.Port != 9090 {
		t.Fatalf("expected overridden port 9090, got %d", result.Server.Port)
	}
	if p.inputCalls != 2 {
		t.Fatalf("expected re-prompt after parse failure, got %d input calls", p.inputCalls)
	}
	if !strings.Contains(out.String(), "Invalid value") {
		t.Fatal("expected a parse failure notice")
	}
}

func TestAskKeepingAllDefaults(t *testing.T) {
	p := &scriptPrompter{}
	w, out := newTestWizard(p)
	result, err := w.Ask()
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	want := config.Default()
	got := *result
	got.Worker.ID = want.Worker.ID
	if got != want {
		t.Fatalf("keeping all defaults should yield the default document:\n got %+v\nwant %+v", got, want)
	}

	// Every field except the two generated ones gets one keep/override prompt.
	wantPrompts := len(wizard.Keys()) - 2
	if p.selectCalls != wantPrompts {
		t.Fatalf("expected %d prompts, got %d", wantPrompts, p.selectCalls)
	}
	for _, title := range []string{"Paths", "Queue", "Server", "Janitor", "Worker", "Logging"} {
		if !strings.Contains(out.String(), title) {
			t.Fatalf("missing section banner %q", title)
		}
	}
}

func TestAskManualOverrideFirstField(t *testing.T) {
	p := &scriptPrompter{
		selects: []int{1},
		inputs:  []string{"farm-9"},
	}
	w, _ := newTestWizard(p)
	result, err := w.Ask()
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if result.ServerName != "farm-9" {
		t.Fatalf("expected overridden server name, got %q", result.ServerName)
	}
	if result.Server.Port != config.Default().Server.Port {
		t.Fatalf("untouched fields must keep defaults, got port %d", result.Server.Port)
	}
}

func TestKeysAreOrderedAndStable(t *testing.T) {
	keys := wizard.Keys()
	if len(keys) == 0 || keys[0] != "server_name" {
		t.Fatalf("unexpected key order: %v", keys)
	}
	index := make(map[string]int, len(keys))
	for i, key := range keys {
		index[key] = i
	}
	if index["paths.config"] > index["queue.url"] {
		t.Fatal("paths section must precede queue section")
	}
	if index["worker.id"] > index["logging.format"] {
		t.Fatal("worker section must precede logging section")
	}
}

func TestGetAndSetDottedKeys(t *testing.T) {
	cfg := config.Default()

	if err := wizard.Set(&cfg, "server.port", "9090"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := wizard.Get(&cfg, "server.port")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "9090" {
		t.Fatalf("unexpected value: %q", got)
	}

	if err := wizard.Set(&cfg, "worker.grace_period_seconds", "-1"); err != nil {
		t.Fatalf("Set failed for signed field: %v", err)
	}
	if cfg.Worker.GracePeriodSeconds != -1 {
		t.Fatalf("signed field not applied: %d", cfg.Worker.GracePeriodSeconds)
	}

	if err := wizard.Set(&cfg, "server.port", "not-a-port"); err == nil {
		t.Fatal("expected parse error for malformed integer")
	}
	if err := wizard.Set(&cfg, "worker.id", "custom"); err == nil {
		t.Fatal("expected generated field to refuse manual values")
	}
	if err := wizard.Set(&cfg, "no.such.key", "x"); err == nil {
		t.Fatal("expected unknown key error")
	}
	if _, err := wizard.Get(&cfg, "no.such.key"); err == nil {
		t.Fatal("expected unknown key error")
	}
}
