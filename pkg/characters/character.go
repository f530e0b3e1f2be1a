// Package characters aggregates the NPCs taking part in a conversation into
// the variable mapping and system prompt sent to the model.
package characters

// Identity is the player as one NPC perceives them.
type Identity struct {
	Name        string  // what the NPC calls the player
	Description string  // the NPC's view of its relationship with the player
	Trust       float64 // numeric trust score
}

// Character is a loaded NPC. The manager only ever reads from it.
type Character interface {
	Name() string
	Bio() string

	// PerspectivePlayerIdentity returns the player as this character knows
	// them. An error means the relationship data is missing or unreadable.
	PerspectivePlayerIdentity() (Identity, error)

	// ReplacementDict returns this character's own prompt variables, used as
	// the base mapping in single-character conversations. Callers may modify
	// the returned map.
	ReplacementDict() map[string]any

	// ConversationSummary returns a recap of earlier conversations, or "".
	ConversationSummary() string
}

// Mode is the presentation mode of a conversation.
type Mode int

const (
	ModeEmpty Mode = iota
	ModeSingle
	ModeMulti
)

// ModeFor returns the presentation mode for n active characters.
func ModeFor(n int) Mode {
	switch {
	case n <= 0:
		return ModeEmpty
	case n == 1:
		return ModeSingle
	default:
		return ModeMulti
	}
}

func (m Mode) String() string {
	switch m {
	case ModeEmpty:
		return "empty"
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return "unknown"
	}
}
