package characters

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"

	"github.com/jwebster45206/npc-engine/pkg/behavior"
	"github.com/jwebster45206/npc-engine/pkg/gamestate"
	"github.com/jwebster45206/npc-engine/pkg/language"
	"github.com/jwebster45206/npc-engine/pkg/prompts"
	"github.com/jwebster45206/npc-engine/pkg/timeofday"
)

// Variable names set on every mapping. They are applied last and win over
// any colliding name from the mode-specific base.
const (
	VarNamesWithPlayer = "names_w_player"
	VarTime            = "time"
	VarAMPM            = "ampm"
	VarTimeGroup       = "time_group"
	VarLocation        = "location"
	VarPlayerName      = "player_name"
	VarPlayerRace      = "player_race"
	VarPlayerGender    = "player_gender"
	VarBehaviorSummary = "behavior_summary"
	VarLanguage        = "language"
)

// Variable names that form the base of a multi-character mapping.
const (
	VarConversationSummaries = "conversation_summaries"
	VarNames                 = "names"
	VarRelationshipSummary   = "relationship_summary"
)

// SharedVars lists the variables present in every mapping.
var SharedVars = []string{
	VarNamesWithPlayer, VarTime, VarAMPM, VarTimeGroup, VarLocation,
	VarPlayerName, VarPlayerRace, VarPlayerGender, VarBehaviorSummary, VarLanguage,
}

// MultiVars lists the base variables of a multi-character mapping.
var MultiVars = []string{VarConversationSummaries, VarNames, VarRelationshipSummary}

const paragraphSeparator = "\n\n"

// Options configures a Manager.
type Options struct {
	Bridge    gamestate.Bridge   // live game context
	Behaviors *behavior.Registry // rendered into behavior_summary; may be nil
	Templates prompts.Templates
	Language  string // language code, e.g. "en"
	Logger    *slog.Logger
}

type entry struct {
	key       string
	character Character
}

// Manager holds the characters active in a conversation and builds the
// system prompt for them. It is safe for concurrent use.
type Manager struct {
	mu     sync.RWMutex
	active []entry // insertion order

	bridge    gamestate.Bridge
	behaviors *behavior.Registry
	templates prompts.Templates
	language  string
	logger    *slog.Logger
}

// NewManager creates a manager with no active characters.
func NewManager(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		bridge:    opts.Bridge,
		behaviors: opts.Behaviors,
		templates: opts.Templates,
		language:  language.Name(opts.Language),
		logger:    logger,
	}
}

// Add makes a character active under key. Re-adding a key replaces the
// character but keeps its position. A nil character is ignored.
func (m *Manager) Add(key string, c Character) {
	if c == nil {
		m.logger.Warn("Ignoring nil character", "key", key)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.active {
		if m.active[i].key == key {
			m.active[i].character = c
			return
		}
	}
	m.active = append(m.active, entry{key: key, character: c})
	m.logger.Debug("Character added to conversation", "key", key, "name", c.Name(), "active", len(m.active))
}

// Remove drops a character from the conversation. Unknown keys are ignored.
func (m *Manager) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.active {
		if m.active[i].key == key {
			m.active = append(m.active[:i], m.active[i+1:]...)
			m.logger.Debug("Character removed from conversation", "key", key, "active", len(m.active))
			return
		}
	}
}

// Get returns the active character stored under key.
func (m *Manager) Get(key string) (Character, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.active {
		if e.key == key {
			return e.character, true
		}
	}
	return nil, false
}

// Count returns the number of active characters.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.active)
}

// Mode returns the current presentation mode.
func (m *Manager) Mode() Mode {
	return ModeFor(m.Count())
}

// Characters returns the active characters in insertion order.
func (m *Manager) Characters() []Character {
	m.mu.RLock()
	defer m.mu.RUnlock()

	chars := make([]Character, len(m.active))
	for i, e := range m.active {
		chars[i] = e.character
	}
	return chars
}

// Names returns the active characters' names.
func (m *Manager) Names() []string {
	return names(m.Characters())
}

// NamesWithPlayer returns Names with the player's name appended last.
func (m *Manager) NamesWithPlayer(ctx context.Context) []string {
	return append(m.Names(), m.snapshot(ctx).PlayerName)
}

// Bios returns the active characters' bios separated by blank lines.
func (m *Manager) Bios() string {
	bios := bios(m.Characters())
	m.logger.Debug("Active bios", "bios", bios)
	return bios
}

// RelationshipSummary describes how the active characters see the player.
func (m *Manager) RelationshipSummary() string {
	return m.relationshipSummary(m.Characters())
}

// ConversationSummaries recaps earlier conversations of every active character.
func (m *Manager) ConversationSummaries() string {
	return conversationSummaries(m.Characters())
}

// VariableMapping builds the template variables for the current turn. Game
// context is read from the bridge on every call.
func (m *Manager) VariableMapping(ctx context.Context) map[string]any {
	return m.variableMapping(ctx, m.Characters())
}

// SystemPrompt formats the template for the current presentation mode. It
// returns "" when no characters are active, and a *prompts.FormatError when
// the template references a variable that is not in the mapping.
func (m *Manager) SystemPrompt(ctx context.Context) (string, error) {
	chars := m.Characters()
	mode := ModeFor(len(chars))
	if mode == ModeEmpty {
		m.logger.Warn("No active characters, returning empty context")
		return "", nil
	}

	m.logger.Debug("Building system prompt", "mode", mode, "characters", len(chars))
	raw := m.templates.Select(mode == ModeSingle)

	prompt, err := prompts.Format(raw, m.variableMapping(ctx, chars))
	if err != nil {
		return "", fmt.Errorf("failed to format %s system prompt: %w", mode, err)
	}
	return prompt, nil
}

func (m *Manager) variableMapping(ctx context.Context, chars []Character) map[string]any {
	var vars map[string]any
	switch ModeFor(len(chars)) {
	case ModeSingle:
		vars = make(map[string]any)
		maps.Copy(vars, chars[0].ReplacementDict())
	default:
		vars = map[string]any{
			VarConversationSummaries: conversationSummaries(chars),
			VarNames:                 names(chars),
			VarRelationshipSummary:   m.relationshipSummary(chars),
		}
	}

	snap := m.snapshot(ctx)
	hour, ampm := timeofday.TwelveHour(snap.Hour)

	vars[VarNamesWithPlayer] = append(names(chars), snap.PlayerName)
	vars[VarTime] = hour
	vars[VarAMPM] = ampm
	vars[VarTimeGroup] = timeofday.Group(snap.Hour)
	vars[VarLocation] = snap.Location
	vars[VarPlayerName] = snap.PlayerName
	vars[VarPlayerRace] = snap.PlayerRace
	vars[VarPlayerGender] = snap.PlayerGender
	vars[VarBehaviorSummary] = m.behaviorSummary(snap.PlayerName)
	vars[VarLanguage] = m.language

	return vars
}

func (m *Manager) snapshot(ctx context.Context) gamestate.Snapshot {
	if m.bridge == nil {
		m.logger.Warn("No game state bridge, using empty game context")
		return gamestate.Snapshot{}
	}
	snap, err := gamestate.LoadSnapshot(ctx, m.bridge)
	if err != nil {
		m.logger.Warn("Failed to read game context from bridge", "error", err)
	}
	return snap
}

func (m *Manager) behaviorSummary(playerName string) string {
	if m.behaviors == nil {
		return ""
	}
	return m.behaviors.Summary(playerName)
}

func (m *Manager) relationshipSummary(chars []Character) string {
	switch ModeFor(len(chars)) {
	case ModeEmpty:
		m.logger.Warn("No active characters, returning empty relationship summary")
		return ""
	case ModeSingle:
		return m.perspectiveDescription(chars[0])
	}

	var sb strings.Builder
	for i, c := range chars {
		sb.WriteString(m.perspectiveDescription(c))
		if i != len(chars)-1 {
			sb.WriteString(paragraphSeparator)
		}
	}
	return sb.String()
}

func (m *Manager) perspectiveDescription(c Character) string {
	identity, err := c.PerspectivePlayerIdentity()
	if err != nil {
		m.logger.Warn("Missing relationship data for character", "name", c.Name(), "error", err)
		return ""
	}
	return identity.Description
}

func names(chars []Character) []string {
	out := make([]string, len(chars))
	for i, c := range chars {
		out[i] = c.Name()
	}
	return out
}

func bios(chars []Character) string {
	var sb strings.Builder
	for i, c := range chars {
		sb.WriteString(c.Bio())
		if i != len(chars)-1 {
			sb.WriteString(paragraphSeparator)
		}
	}
	return sb.String()
}

func conversationSummaries(chars []Character) string {
	var parts []string
	for _, c := range chars {
		if s := strings.TrimSpace(c.ConversationSummary()); s != "" {
			parts = append(parts, c.Name()+": "+s)
		}
	}

	var sb strings.Builder
	for i, p := range parts {
		sb.WriteString(p)
		if i != len(parts)-1 {
			sb.WriteString(paragraphSeparator)
		}
	}
	return sb.String()
}
