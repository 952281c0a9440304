// Package wizard implements the interactive configuration dialog: it walks
// the configuration document section by section, compares the current value
// of each leaf field against a candidate, and rebuilds the document from the
// operator's choices.
//
// Two entry points exist. Ask builds a document from repository defaults,
// offering a keep/override choice per field. Reconcile walks an existing
// document against an optional candidate, prompting only where the two
// disagree. Field order is fixed by the declaration tables in fields.go so a
// wizard transcript always reads the same way.
//
// Generated fields (the worker instance id, the config file location) bypass
// the dialog entirely and are recomputed on every pass.
package wizard
