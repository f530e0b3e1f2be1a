package actor

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jwebster45206/npc-engine/pkg/characters"
)

// ErrNoRelationship is returned when an NPC has no relationship to the player on file.
var ErrNoRelationship = errors.New("npc has no relationship to the player")

// Relationship is how an NPC sees the player.
type Relationship struct {
	Name        string  `yaml:"name"`                  // what the NPC calls the player
	Description string  `yaml:"description,omitempty"` // e.g. "Lydia is sworn to carry your burdens."
	Trust       float64 `yaml:"trust"`                 // -1 (hostile) to 1 (trusted)
}

// NPCSpec is the serializable specification for a non-player character
type NPCSpec struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Bio          string         `yaml:"bio"`
	Race         string         `yaml:"race,omitempty"`
	Gender       string         `yaml:"gender,omitempty"`
	Relationship *Relationship  `yaml:"relationship,omitempty"`
	Summary      string         `yaml:"conversation_summary,omitempty"` // recap of earlier conversations
	Vars         map[string]any `yaml:"vars,omitempty"`                 // extra prompt variables for this NPC
}

// NPC is the runtime representation of a non-player character. It is
// read-only once built.
type NPC struct {
	Spec *NPCSpec
}

// Ensure NPC implements characters.Character interface
var _ characters.Character = (*NPC)(nil)

// NewNPCFromSpec validates spec and builds an NPC from it
func NewNPCFromSpec(spec *NPCSpec) (*NPC, error) {
	if spec == nil {
		return nil, fmt.Errorf("npc spec cannot be nil")
	}
	if strings.TrimSpace(spec.Name) == "" {
		return nil, fmt.Errorf("npc name cannot be empty")
	}
	if spec.ID == "" {
		spec.ID = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(spec.Name), " ", "_"))
	}
	return &NPC{Spec: spec}, nil
}

// LoadNPCSpec reads an NPC spec from a YAML file
func LoadNPCSpec(path string) (*NPCSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read npc file %s: %w", path, err)
	}

	var spec NPCSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal npc file %s: %w", path, err)
	}
	return &spec, nil
}

// LoadNPC reads and builds an NPC from a YAML file
func LoadNPC(path string) (*NPC, error) {
	spec, err := LoadNPCSpec(path)
	if err != nil {
		return nil, err
	}
	npc, err := NewNPCFromSpec(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid npc file %s: %w", path, err)
	}
	return npc, nil
}

func (n *NPC) Key() string                 { return n.Spec.ID }
func (n *NPC) Name() string                { return n.Spec.Name }
func (n *NPC) Bio() string                 { return n.Spec.Bio }
func (n *NPC) ConversationSummary() string { return n.Spec.Summary }

// PerspectivePlayerIdentity returns the player as this NPC knows them.
func (n *NPC) PerspectivePlayerIdentity() (characters.Identity, error) {
	rel := n.Spec.Relationship
	if rel == nil {
		return characters.Identity{}, fmt.Errorf("%s: %w", n.Spec.Name, ErrNoRelationship)
	}
	return characters.Identity{
		Name:        rel.Name,
		Description: rel.Description,
		Trust:       rel.Trust,
	}, nil
}

// ReplacementDict returns the prompt variables for a single-NPC conversation.
// Custom vars are applied first so the built-in fields cannot be shadowed.
// A fresh map is returned on every call.
func (n *NPC) ReplacementDict() map[string]any {
	vars := make(map[string]any, len(n.Spec.Vars)+8)
	maps.Copy(vars, n.Spec.Vars)

	vars["name"] = n.Spec.Name
	vars["bio"] = n.Spec.Bio
	vars["race"] = n.Spec.Race
	vars["gender"] = n.Spec.Gender
	vars["conversation_summary"] = n.Spec.Summary

	vars["perspective_player_name"] = ""
	vars["perspective_player_description"] = ""
	vars["trust"] = TrustLevel(0)
	if rel := n.Spec.Relationship; rel != nil {
		vars["perspective_player_name"] = rel.Name
		vars["perspective_player_description"] = rel.Description
		vars["trust"] = TrustLevel(rel.Trust)
	}
	return vars
}

// TrustLevel describes a trust score in words for the prompt.
func TrustLevel(trust float64) string {
	switch {
	case trust <= -0.5:
		return "hostile"
	case trust < 0:
		return "wary"
	case trust < 0.25:
		return "a stranger"
	case trust < 0.75:
		return "an acquaintance"
	default:
		return "a trusted friend"
	}
}
