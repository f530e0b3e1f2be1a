// Package timeofday turns the raw in-game hour into the values the
// dialogue prompts present to the model.
package timeofday

const (
	AM = "AM"
	PM = "PM"
)

// Group returns a coarse phrase for the raw 24-hour value, e.g. "at dawn".
// It must be given the unconverted hour.
func Group(hour int) string {
	switch {
	case hour <= 4:
		return "at night"
	case hour <= 7:
		return "at dawn"
	case hour <= 11:
		return "in the morning"
	case hour <= 14:
		return "in the afternoon"
	case hour <= 19:
		return "in the evening"
	case hour <= 21:
		return "at dusk"
	default:
		return "at night"
	}
}

// TwelveHour converts a 24-hour value for display. Hours up to and including
// 12 are tagged AM, so noon is reported as "12 AM".
func TwelveHour(hour int) (int, string) {
	if hour <= 12 {
		return hour, AM
	}
	return hour - 12, PM
}
