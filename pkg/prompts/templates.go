package prompts

import (
	"fmt"
	"slices"
)

// Templates holds the raw system prompts for both presentation modes.
type Templates struct {
	Single string `yaml:"single_npc_prompt"`
	Multi  string `yaml:"multi_npc_prompt"`
}

// Select returns the single-character template when single is true and the
// multi-character template otherwise.
func (t Templates) Select(single bool) string {
	if single {
		return t.Single
	}
	return t.Multi
}

// Check reports placeholders in either template that are not in known.
func (t Templates) Check(singleKnown, multiKnown []string) error {
	if err := checkTemplate("single_npc_prompt", t.Single, singleKnown); err != nil {
		return err
	}
	return checkTemplate("multi_npc_prompt", t.Multi, multiKnown)
}

func checkTemplate(label, template string, known []string) error {
	names, err := Placeholders(template)
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	for _, name := range names {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%s: %w", label, &FormatError{Variable: name, Reason: "unknown variable"})
		}
	}
	return nil
}
