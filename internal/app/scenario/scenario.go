// Package scenario loads registration scenarios from a data file and plays
// them against a ports.RegistrationService, the way a browser bot fills in
// the page: type every field, leave it, press submit, look for the notice.
//
// Data file format:
//
//	# comment
//	scenario=valid user
//	nome=Maria Silva
//	email=maria@example.com
//	telefone=11987654321
//	senha=abc123
//	confirmarSenha=abc123
//	---
//	name=Joao
//	password=abc123
//	confirm_password=abc124
//	expect=blocked
//
// Blank lines and lines starting with '#' are ignored, "---" separates
// scenarios and every other line is key=value split on the first '='. Lines
// without '=' are skipped.
package scenario

import (
	"fmt"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
)

// Outcome is the observable result of pressing submit.
type Outcome string

// Outcomes.
const (
	OutcomeSuccess Outcome = "success"
	OutcomeBlocked Outcome = "blocked"
)

// Reserved keys that are not form fields.
const (
	keyScenario = "scenario"
	keyExpect   = "expect"
)

// aliases maps the keys accepted in data files to form field names.
var aliases = map[string]string{
	"nome":           form.FieldName,
	"telefone":       form.FieldPhone,
	"senha":          form.FieldPassword,
	"confirmarSenha": form.FieldConfirmPassword,
}

// Scenario is one form fill-in.
type Scenario struct {
	// Name labels the scenario in reports.
	Name string
	// Line is where the scenario starts in its data file.
	Line int
	// Values maps field names to the raw text typed into them.
	Values map[string]string
	// Expect is the outcome the scenario must produce.
	Expect Outcome
}

// FieldName resolves a data file key to a form field name.
func FieldName(key string) string {
	if name, ok := aliases[key]; ok {
		return name
	}
	return key
}

// Result is the outcome of playing one scenario.
type Result struct {
	Scenario Scenario
	// Outcome is what the form did. Empty when Err is set.
	Outcome Outcome
	// Form is the form state right after submit.
	Form form.Snapshot
	// Err is set when the scenario could not be played to the end.
	Err error
}

// Passed reports whether the scenario ran and produced the expected outcome.
func (r Result) Passed() bool {
	return r.Err == nil && r.Outcome == r.Scenario.Expect
}

// String renders a one-line summary.
func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("ERROR %s: %v", r.Scenario.Name, r.Err)
	case r.Passed():
		return fmt.Sprintf("PASS  %s: %s", r.Scenario.Name, r.Outcome)
	default:
		return fmt.Sprintf("FAIL  %s: got %s, want %s", r.Scenario.Name, r.Outcome, r.Scenario.Expect)
	}
}
