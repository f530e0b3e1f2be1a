package gamestate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Snapshot is the live game context read from the bridge at one point in time.
type Snapshot struct {
	Hour         int // in-game hour, 0-23
	Location     string
	PlayerName   string
	PlayerRace   string
	PlayerGender string
}

// LoadSnapshot reads every live field from the bridge. Fields that cannot be
// read keep their zero value; all read errors are joined and returned along
// with the partial snapshot so callers can log and carry on.
func LoadSnapshot(ctx context.Context, b Bridge) (Snapshot, error) {
	var (
		s    Snapshot
		errs []error
	)

	read := func(key string) string {
		v, err := b.ReadGameInfo(ctx, key)
		if err != nil {
			errs = append(errs, err)
			return ""
		}
		return v
	}

	rawHour := read(KeyInGameTime)
	s.Location = read(KeyCurrentLocation)
	s.PlayerName = read(KeyPlayerName)
	s.PlayerRace = read(KeyPlayerRace)
	s.PlayerGender = read(KeyPlayerGender)

	if rawHour != "" {
		hour, err := ParseHour(rawHour)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.Hour = hour
		}
	}

	return s, errors.Join(errs...)
}

// ParseHour parses the in-game time as written by the game. The game writes
// fractional hours ("13.75"), which are truncated to the whole hour.
func ParseHour(raw string) (int, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid in-game time %q: %w", raw, err)
	}
	hour := int(f)
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("in-game time %q out of range", raw)
	}
	return hour, nil
}
