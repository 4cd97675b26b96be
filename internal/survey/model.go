package survey

import "time"

// Point represents a single survey measurement taken at a position on the
// floor plan. It combines the wireless link snapshot and the throughput test
// results captured at that position.
type Point struct {
	ID           string       `json:"id"`           // Unique identifier, assigned by the store
	X            float64      `json:"x"`            // Horizontal position on the floor plan
	Y            float64      `json:"y"`            // Vertical position on the floor plan
	WifiData     WifiData     `json:"wifiData"`     // Wireless link snapshot at measurement time
	IperfResults IperfResults `json:"iperfResults"` // Throughput test results
	Timestamp    time.Time    `json:"timestamp"`    // When the measurement was taken
	Disabled     bool         `json:"isDisabled"`   // Excluded from heatmap generation when true
}

// WifiData is the state of the wireless link as reported by the platform
// scanner at the moment a survey point was captured.
type WifiData struct {
	SSID         string  `json:"ssid"`         // Network name
	BSSID        string  `json:"bssid"`        // Access point hardware address
	RSSI         int     `json:"rssi"`         // Received signal strength in dBm
	Channel      int     `json:"channel"`      // Wireless channel number
	Security     string  `json:"security"`     // Security mode (e.g. "WPA2 Personal")
	TxRate       float64 `json:"txRate"`       // Transmit rate in Mbps
	PhyMode      string  `json:"phyMode"`      // Physical layer mode (e.g. "802.11ax")
	ChannelWidth int     `json:"channelWidth"` // Channel width in MHz
	Frequency    int     `json:"frequency"`    // Center frequency in MHz
}

// TestResult holds the outcome of a single directional throughput test.
type TestResult struct {
	BitsPerSecond float64 `json:"bitsPerSecond"`         // Measured throughput
	Retransmits   int     `json:"retransmits,omitempty"` // TCP retransmit count, zero for UDP
	JitterMs      float64 `json:"jitterMs,omitempty"`    // UDP jitter in milliseconds, zero for TCP
	LostPercent   float64 `json:"lostPercent,omitempty"` // UDP datagram loss percentage, zero for TCP
}

// IperfResults groups the four directional throughput tests run at each
// survey point.
type IperfResults struct {
	TCPDownload TestResult `json:"tcpDownload"`
	TCPUpload   TestResult `json:"tcpUpload"`
	UDPDownload TestResult `json:"udpDownload"`
	UDPUpload   TestResult `json:"udpUpload"`
}

// APMapping associates an access point hardware address with a
// human-assigned name. Mappings are user-maintained; address uniqueness is
// assumed but not enforced.
type APMapping struct {
	APName     string `json:"apName"`
	MacAddress string `json:"macAddress"`
}
