package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doroshv/wifi-heatmapper/internal/survey"
)

func testPoint(id, bssid string, rssi int, disabled bool) survey.Point {
	return survey.Point{
		ID: id,
		X:  10,
		Y:  20,
		WifiData: survey.WifiData{
			SSID:         "office",
			BSSID:        bssid,
			RSSI:         rssi,
			Channel:      36,
			Security:     "WPA2 Personal",
			TxRate:       866.7,
			PhyMode:      "802.11ac",
			ChannelWidth: 80,
			Frequency:    5180,
		},
		IperfResults: survey.IperfResults{
			TCPDownload: survey.TestResult{BitsPerSecond: 123_456_789},
			TCPUpload:   survey.TestResult{BitsPerSecond: 98_765_432},
			UDPDownload: survey.TestResult{BitsPerSecond: 50_000_000},
			UDPUpload:   survey.TestResult{BitsPerSecond: 25_000_000},
		},
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Disabled:  disabled,
	}
}

func TestFlattenPreservesOrderAndLength(t *testing.T) {
	points := []survey.Point{
		testPoint("a", "AA:BB", -50, false),
		testPoint("b", "CC:DD", -60, false),
		testPoint("c", "EE:FF", -70, true),
	}

	rows := Flatten(points, nil, survey.SignalQuality)
	require.Len(t, rows, len(points))
	for i, r := range rows {
		assert.Equal(t, points[i].ID, r.ID)
		// No mapping table: label is the raw address.
		assert.Equal(t, points[i].WifiData.BSSID, r.AP)
	}
}

func TestFlattenResolvesAPLabel(t *testing.T) {
	points := []survey.Point{testPoint("a", "AA:BB", -55, false)}
	mappings := []survey.APMapping{
		{APName: "Router1", MacAddress: "AA:BB"},
		{APName: "Router2", MacAddress: "CC:DD"},
	}

	rows := Flatten(points, mappings, survey.SignalQuality)
	require.Len(t, rows, 1)
	assert.Equal(t, "Router1 (AA:BB)", rows[0].AP)
}

func TestFlattenFirstMappingMatchWins(t *testing.T) {
	points := []survey.Point{testPoint("a", "AA:BB", -55, false)}
	mappings := []survey.APMapping{
		{APName: "First", MacAddress: "AA:BB"},
		{APName: "Second", MacAddress: "AA:BB"},
	}

	rows := Flatten(points, mappings, survey.SignalQuality)
	require.Len(t, rows, 1)
	assert.Equal(t, "First (AA:BB)", rows[0].AP)
}

func TestFlattenNoMatchFallsBackToAddress(t *testing.T) {
	points := []survey.Point{testPoint("a", "11:22", -55, false)}
	mappings := []survey.APMapping{{APName: "Router1", MacAddress: "AA:BB"}}

	rows := Flatten(points, mappings, survey.SignalQuality)
	require.Len(t, rows, 1)
	assert.Equal(t, "11:22", rows[0].AP)
}

func TestFlattenDerivedFields(t *testing.T) {
	points := []survey.Point{testPoint("a", "AA:BB", -65, true)}

	rows := Flatten(points, nil, survey.SignalQuality)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 123.46, r.TCPDownload)
	assert.Equal(t, 98.77, r.TCPUpload)
	assert.Equal(t, 50.0, r.UDPDownload)
	assert.Equal(t, 25.0, r.UDPUpload)
	assert.Equal(t, 70, r.Quality)
	assert.Equal(t, "5180 Mhz", r.Frequency)
	assert.True(t, r.Disabled)
}

func TestFlattenUsesInjectedQuality(t *testing.T) {
	points := []survey.Point{testPoint("a", "AA:BB", -65, false)}

	rows := Flatten(points, nil, func(rssi int) int { return 42 })
	require.Len(t, rows, 1)
	assert.Equal(t, 42, rows[0].Quality)
}
