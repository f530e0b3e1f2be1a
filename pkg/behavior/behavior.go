package behavior

import (
	"context"
	"log/slog"

	"github.com/jwebster45206/npc-engine/pkg/gamestate"
)

// Behavior is something the model can trigger by opening its reply with
// "<Keyword>:". Implementations are immutable once constructed.
type Behavior interface {
	Keyword() string
	Description() string // when to emit the keyword; may contain {player}
	Example() string

	// Run performs the behavior's side effect when active is true. It returns
	// the keyword either way, so the result does not tell callers whether the
	// side effect ran.
	Run(ctx context.Context, active bool) string
}

// BridgeBehavior is a Behavior whose side effect is a single write to the
// game-state bridge.
type BridgeBehavior struct {
	keyword     string
	description string
	example     string
	key         string
	value       string

	bridge gamestate.Bridge
	logger *slog.Logger
}

// Ensure BridgeBehavior implements Behavior interface
var _ Behavior = (*BridgeBehavior)(nil)

// Spec describes a BridgeBehavior.
type Spec struct {
	Keyword     string
	Description string
	Example     string
	Key         string // bridge key written on activation
	Value       string
}

// New creates a behavior that writes spec.Key = spec.Value to bridge when run.
func New(spec Spec, bridge gamestate.Bridge, logger *slog.Logger) *BridgeBehavior {
	if logger == nil {
		logger = slog.Default()
	}
	return &BridgeBehavior{
		keyword:     spec.Keyword,
		description: spec.Description,
		example:     spec.Example,
		key:         spec.Key,
		value:       spec.Value,
		bridge:      bridge,
		logger:      logger,
	}
}

func (b *BridgeBehavior) Keyword() string     { return b.keyword }
func (b *BridgeBehavior) Description() string { return b.description }
func (b *BridgeBehavior) Example() string     { return b.example }

// Run writes the behavior's bridge value when active. A failed write is
// logged and swallowed so the conversation turn carries on.
func (b *BridgeBehavior) Run(ctx context.Context, active bool) string {
	if !active {
		return b.keyword
	}

	b.logger.Info("Behavior triggered", "behavior", b.keyword)

	if b.bridge == nil {
		b.logger.Warn("No game state bridge, behavior side effect skipped", "behavior", b.keyword, "key", b.key)
		return b.keyword
	}
	if err := b.bridge.WriteGameInfo(ctx, b.key, b.value); err != nil {
		b.logger.Warn("Failed to write behavior to game state bridge",
			"behavior", b.keyword,
			"key", b.key,
			"error", err)
	}
	return b.keyword
}
