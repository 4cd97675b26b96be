package survey

// SignalQuality converts a received signal strength in dBm to a 0-100
// quality percentage. The mapping is linear between -100 dBm (0%) and
// -50 dBm (100%), clamped at both ends.
func SignalQuality(rssi int) int {
	q := 2 * (rssi + 100)
	if q < 0 {
		return 0
	}
	if q > 100 {
		return 100
	}
	return q
}
