package behavior

import (
	"log/slog"

	"github.com/jwebster45206/npc-engine/pkg/gamestate"
)

const (
	OffendedKeyword = "Offended"
	ForgivenKeyword = "Forgiven"
	FollowKeyword   = "Follow"
)

// NewOffended makes the NPC turn hostile. An empty keyword uses the default.
func NewOffended(keyword string, bridge gamestate.Bridge, logger *slog.Logger) *BridgeBehavior {
	if keyword == "" {
		keyword = OffendedKeyword
	}
	return New(Spec{
		Keyword:     keyword,
		Description: "If {player} says something hurtful / offensive, begin your response with '" + keyword + ":'.",
		Example:     "'Have you washed lately?' '" + keyword + ": How dare you!'",
		Key:         gamestate.KeyAggro,
		Value:       "1",
	}, bridge, logger)
}

// NewForgiven calms an NPC that was previously offended.
func NewForgiven(keyword string, bridge gamestate.Bridge, logger *slog.Logger) *BridgeBehavior {
	if keyword == "" {
		keyword = ForgivenKeyword
	}
	return New(Spec{
		Keyword:     keyword,
		Description: "If {player} apologizes after offending you and you accept the apology, begin your response with '" + keyword + ":'.",
		Example:     "'I am sorry, I did not mean it.' '" + keyword + ": Very well, but watch your tongue.'",
		Key:         gamestate.KeyAggro,
		Value:       "0",
	}, bridge, logger)
}

// NewFollow makes the NPC start following the player.
func NewFollow(keyword string, bridge gamestate.Bridge, logger *slog.Logger) *BridgeBehavior {
	if keyword == "" {
		keyword = FollowKeyword
	}
	return New(Spec{
		Keyword:     keyword,
		Description: "If {player} asks you to come along and you agree, begin your response with '" + keyword + ":'.",
		Example:     "'Will you travel with me?' '" + keyword + ": Lead the way.'",
		Key:         gamestate.KeyFollow,
		Value:       "True",
	}, bridge, logger)
}
