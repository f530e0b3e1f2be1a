package timeofday

import "testing"

func TestTwelveHour(t *testing.T) {
	tests := []struct {
		hour     int
		wantHour int
		wantTag  string
	}{
		{hour: 0, wantHour: 0, wantTag: AM},
		{hour: 1, wantHour: 1, wantTag: AM},
		{hour: 11, wantHour: 11, wantTag: AM},
		{hour: 12, wantHour: 12, wantTag: AM}, // noon stays AM
		{hour: 13, wantHour: 1, wantTag: PM},
		{hour: 18, wantHour: 6, wantTag: PM},
		{hour: 23, wantHour: 11, wantTag: PM},
	}

	for _, tt := range tests {
		gotHour, gotTag := TwelveHour(tt.hour)
		if gotHour != tt.wantHour || gotTag != tt.wantTag {
			t.Errorf("TwelveHour(%d) = %d %s, want %d %s", tt.hour, gotHour, gotTag, tt.wantHour, tt.wantTag)
		}
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "at night"},
		{4, "at night"},
		{5, "at dawn"},
		{7, "at dawn"},
		{8, "in the morning"},
		{11, "in the morning"},
		{12, "in the afternoon"},
		{14, "in the afternoon"},
		{15, "in the evening"},
		{19, "in the evening"},
		{20, "at dusk"},
		{21, "at dusk"},
		{22, "at night"},
		{23, "at night"},
	}

	for _, tt := range tests {
		if got := Group(tt.hour); got != tt.want {
			t.Errorf("Group(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestGroupUsesRawHour(t *testing.T) {
	// 13:00 converts to 1 PM, but must still bucket as afternoon, not night
	display, _ := TwelveHour(13)
	if Group(13) == Group(display) {
		t.Errorf("Expected raw and converted hours to bucket differently, both gave %q", Group(13))
	}
}
