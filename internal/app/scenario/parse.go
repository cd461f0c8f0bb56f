package scenario

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
)

const separator = "---"

// Load reads scenarios from the file at path.
func Load(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	scenarios, err := Parse(f, form.Registration())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// Parse reads scenarios from r. Keys must name a field of layout (directly or
// through an alias) or be one of the reserved keys "scenario" and "expect".
func Parse(r io.Reader, layout form.Layout) ([]Scenario, error) {
	known := make(map[string]bool, len(layout.Fields))
	for _, d := range layout.Fields {
		known[d.Name] = true
	}

	var (
		scenarios []Scenario
		current   *Scenario
		lineNo    int
	)

	flush := func() {
		if current == nil {
			return
		}
		if current.Name == "" {
			current.Name = defaultName(current, len(scenarios)+1)
		}
		scenarios = append(scenarios, *current)
		current = nil
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == separator {
			flush()
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if current == nil {
			current = &Scenario{Line: lineNo, Values: map[string]string{}, Expect: OutcomeSuccess}
		}

		switch key {
		case keyScenario:
			current.Name = value
		case keyExpect:
			outcome, err := parseOutcome(value)
			if err != nil {
				return nil, lineError(lineNo, keyExpect, err.Error())
			}
			current.Expect = outcome
		default:
			name := FieldName(key)
			if !known[name] {
				return nil, lineError(lineNo, key, domain.MsgUnknown)
			}
			current.Values[name] = value
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}
	flush()

	return scenarios, nil
}

func parseOutcome(v string) (Outcome, error) {
	switch Outcome(strings.ToLower(v)) {
	case OutcomeSuccess:
		return OutcomeSuccess, nil
	case OutcomeBlocked:
		return OutcomeBlocked, nil
	default:
		return "", fmt.Errorf("must be %q or %q, got %q", OutcomeSuccess, OutcomeBlocked, v)
	}
}

// defaultName labels an unnamed scenario with the typed name, falling back to
// its position.
func defaultName(s *Scenario, n int) string {
	if v := s.Values[form.FieldName]; v != "" {
		return v
	}
	return fmt.Sprintf("scenario %d", n)
}

func lineError(line int, key, msg string) error {
	return fmt.Errorf("line %d: %w", line, &domain.ValidationError{
		Fields: map[string]string{key: msg},
	})
}
