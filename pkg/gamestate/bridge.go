package gamestate

import (
	"context"
	"errors"
)

// Keys written by the game plugin and read back by the conversation engine.
const (
	KeyInGameTime      = "_mantella_in_game_time"
	KeyCurrentLocation = "_mantella_current_location"
	KeyPlayerName      = "_mantella_player_name"
	KeyPlayerRace      = "_mantella_player_race"
	KeyPlayerGender    = "_mantella_player_gender"

	// Keys written by behaviors and picked up by the game on its next tick.
	KeyAggro  = "_mantella_aggro"
	KeyFollow = "_mantella_follow"
)

// ErrInvalidKey is returned for keys that are empty or contain path separators.
var ErrInvalidKey = errors.New("invalid game info key")

// Bridge is the side channel shared with the running game.
// Reads are snapshots that may be one game tick stale; writes are
// fire-and-forget and are not acknowledged by the game.
type Bridge interface {
	// ReadGameInfo returns the current value for key, or "" if the game has
	// not written it yet.
	ReadGameInfo(ctx context.Context, key string) (string, error)

	// WriteGameInfo replaces the value stored under key.
	WriteGameInfo(ctx context.Context, key, value string) error
}
