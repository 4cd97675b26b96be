package survey

import "testing"

func TestSignalQuality(t *testing.T) {
	tests := []struct {
		rssi int
		want int
	}{
		{-100, 0},
		{-120, 0},
		{-90, 20},
		{-75, 50},
		{-60, 80},
		{-50, 100},
		{-30, 100},
		{0, 100},
	}

	for _, tt := range tests {
		if got := SignalQuality(tt.rssi); got != tt.want {
			t.Errorf("SignalQuality(%d) = %d, want %d", tt.rssi, got, tt.want)
		}
	}
}
