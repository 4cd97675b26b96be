package view

import (
	"fmt"
	"time"

	"github.com/doroshv/wifi-heatmapper/internal/survey"
)

// QualityFunc converts a received signal strength in dBm to a 0-100
// percentage. The flattener treats it as an opaque collaborator; see
// survey.SignalQuality for the default implementation.
type QualityFunc func(rssi int) int

// Row is one survey point flattened for tabular display. It is derived
// state: fully reconstructible from the source point and the mapping table,
// never persisted and never mutated in place.
type Row struct {
	ID           string
	X            float64
	Y            float64
	SSID         string
	AP           string // "<name> (<address>)" when a mapping matches, else the raw address
	RSSI         int
	Quality      int // 0-100, from the injected QualityFunc
	Channel      int
	Frequency    string // labeled, e.g. "5180 Mhz"
	ChannelWidth int
	TxRate       float64
	PhyMode      string
	Security     string
	TCPDownload  float64 // Mbps, two decimals
	TCPUpload    float64
	UDPDownload  float64
	UDPUpload    float64
	Timestamp    string // local-zone display string
	CapturedAt   time.Time
	Disabled     bool
}

// Flatten converts survey points into display rows, resolving access point
// labels against the mapping table. Output order matches input order and the
// output length equals the input length.
//
// Label resolution is a linear scan over the mapping table; the first entry
// whose address matches the point's BSSID wins. Table sizes are small enough
// that an index is not worth building.
func Flatten(points []survey.Point, mappings []survey.APMapping, quality QualityFunc) []Row {
	rows := make([]Row, 0, len(points))
	for _, p := range points {
		rows = append(rows, Row{
			ID:           p.ID,
			X:            p.X,
			Y:            p.Y,
			SSID:         p.WifiData.SSID,
			AP:           resolveAPLabel(p.WifiData.BSSID, mappings),
			RSSI:         p.WifiData.RSSI,
			Quality:      quality(p.WifiData.RSSI),
			Channel:      p.WifiData.Channel,
			Frequency:    FormatFrequency(p.WifiData.Frequency),
			ChannelWidth: p.WifiData.ChannelWidth,
			TxRate:       p.WifiData.TxRate,
			PhyMode:      p.WifiData.PhyMode,
			Security:     p.WifiData.Security,
			TCPDownload:  MbpsFromBps(p.IperfResults.TCPDownload.BitsPerSecond),
			TCPUpload:    MbpsFromBps(p.IperfResults.TCPUpload.BitsPerSecond),
			UDPDownload:  MbpsFromBps(p.IperfResults.UDPDownload.BitsPerSecond),
			UDPUpload:    MbpsFromBps(p.IperfResults.UDPUpload.BitsPerSecond),
			Timestamp:    FormatTimestamp(p.Timestamp),
			CapturedAt:   p.Timestamp,
			Disabled:     p.Disabled,
		})
	}
	return rows
}

func resolveAPLabel(bssid string, mappings []survey.APMapping) string {
	for _, m := range mappings {
		if m.MacAddress == bssid {
			return fmt.Sprintf("%s (%s)", m.APName, m.MacAddress)
		}
	}
	return bssid
}
