package behavior

import (
	"context"
	"fmt"
	"strings"
)

const playerPlaceholder = "{player}"

// Registry is the fixed, ordered set of behaviors known to a conversation.
type Registry struct {
	behaviors []Behavior
}

// NewRegistry creates a registry. Keywords are compared case-insensitively
// and must be unique.
func NewRegistry(behaviors ...Behavior) (*Registry, error) {
	seen := make(map[string]bool, len(behaviors))
	for _, b := range behaviors {
		kw := strings.ToLower(strings.TrimSpace(b.Keyword()))
		if kw == "" {
			return nil, fmt.Errorf("behavior has an empty keyword")
		}
		if seen[kw] {
			return nil, fmt.Errorf("duplicate behavior keyword %q", b.Keyword())
		}
		seen[kw] = true
	}
	return &Registry{behaviors: append([]Behavior(nil), behaviors...)}, nil
}

// Behaviors returns the registered behaviors in registry order.
func (r *Registry) Behaviors() []Behavior {
	return append([]Behavior(nil), r.behaviors...)
}

// Len returns the number of registered behaviors.
func (r *Registry) Len() int {
	return len(r.behaviors)
}

// Lookup finds a behavior by keyword, ignoring case.
func (r *Registry) Lookup(keyword string) (Behavior, bool) {
	for _, b := range r.behaviors {
		if strings.EqualFold(b.Keyword(), keyword) {
			return b, true
		}
	}
	return nil, false
}

// Summary renders every behavior's instructions for the system prompt, in
// registry order. {player} in descriptions is replaced with playerName.
func (r *Registry) Summary(playerName string) string {
	var sb strings.Builder
	for i, b := range r.behaviors {
		sb.WriteString(b.Keyword())
		sb.WriteString(": ")
		sb.WriteString(strings.ReplaceAll(b.Description(), playerPlaceholder, playerName))
		sb.WriteString("\nExample: ")
		sb.WriteString(b.Example())
		if i != len(r.behaviors)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// markerCutset is stripped from the start of a response before looking for
// a "<Keyword>:" marker. Models often wrap the reply in quotes or emphasis.
const markerCutset = " \t\r\n\"'`*_“‘"

// Detect returns the behavior whose "<Keyword>:" marker opens the model
// output, if any. The marker only counts at the start of the response, so
// a "<Keyword>:" later in the dialogue is ordinary text.
func (r *Registry) Detect(text string) []Behavior {
	lower := strings.ToLower(strings.TrimLeft(text, markerCutset))
	for _, b := range r.behaviors {
		if strings.HasPrefix(lower, strings.ToLower(b.Keyword())+":") {
			return []Behavior{b}
		}
	}
	return nil
}

// Dispatch runs each behavior detected in text exactly once and returns the
// keywords that fired.
func (r *Registry) Dispatch(ctx context.Context, text string) []string {
	detected := r.Detect(text)
	fired := make([]string, 0, len(detected))
	for _, b := range detected {
		fired = append(fired, b.Run(ctx, true))
	}
	return fired
}
