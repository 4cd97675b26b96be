package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doroshv/wifi-heatmapper/internal/survey"
)

func newTestStore(t *testing.T) *SqliteStore {
	t.Helper()

	s := NewSqliteStore(filepath.Join(t.TempDir(), "survey.db"))
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing store: %v", err)
		}
	})
	return s
}

func storedPoint(id string, ts time.Time, disabled bool) survey.Point {
	return survey.Point{
		ID: id,
		X:  1.5,
		Y:  2.5,
		WifiData: survey.WifiData{
			SSID:         "office",
			BSSID:        "AA:BB:CC:DD:EE:FF",
			RSSI:         -61,
			Channel:      36,
			Security:     "WPA2 Personal",
			TxRate:       866.7,
			PhyMode:      "802.11ac",
			ChannelWidth: 80,
			Frequency:    5180,
		},
		IperfResults: survey.IperfResults{
			TCPDownload: survey.TestResult{BitsPerSecond: 120e6, Retransmits: 3},
			TCPUpload:   survey.TestResult{BitsPerSecond: 80e6},
			UDPDownload: survey.TestResult{BitsPerSecond: 95e6, JitterMs: 0.42},
			UDPUpload:   survey.TestResult{BitsPerSecond: 60e6, LostPercent: 1.5},
		},
		Timestamp: ts,
		Disabled:  disabled,
	}
}

func TestInsertAndReadPoints(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Inserted out of timestamp order on purpose.
	_, err := s.InsertPoint(ctx, storedPoint("p2", base.Add(time.Hour), true))
	require.NoError(t, err)
	_, err = s.InsertPoint(ctx, storedPoint("p1", base, false))
	require.NoError(t, err)

	points, err := s.Points(ctx)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, "p1", points[0].ID)
	assert.Equal(t, "p2", points[1].ID)
	assert.True(t, points[0].Timestamp.Equal(base))
	assert.True(t, points[1].Disabled)

	want := storedPoint("p1", base, false)
	assert.Equal(t, want.WifiData, points[0].WifiData)
	assert.Equal(t, want.IperfResults, points[0].IperfResults)
}

func TestInsertPointAssignsID(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertPoint(context.Background(), storedPoint("", time.Now(), false))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestDeletePointsBatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		_, err := s.InsertPoint(ctx, storedPoint(id, base.Add(time.Duration(i)*time.Minute), false))
		require.NoError(t, err)
	}

	require.NoError(t, s.DeletePoints(ctx, []string{"a", "c", "missing"}))
	require.NoError(t, s.DeletePoints(ctx, nil))

	points, err := s.Points(ctx)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "b", points[0].ID)
}

func TestUpdatePointPatch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.InsertPoint(ctx, storedPoint("a", time.Now(), false))
	require.NoError(t, err)

	disabled := true
	x := 42.0
	require.NoError(t, s.UpdatePoint(ctx, "a", survey.PointPatch{Disabled: &disabled, X: &x}))

	points, err := s.Points(ctx)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.True(t, points[0].Disabled)
	assert.Equal(t, 42.0, points[0].X)
	assert.Equal(t, 2.5, points[0].Y, "unpatched field must not change")

	// Empty patch is a no-op, even for unknown IDs.
	require.NoError(t, s.UpdatePoint(ctx, "missing", survey.PointPatch{}))

	err = s.UpdatePoint(ctx, "missing", survey.PointPatch{Disabled: &disabled})
	require.ErrorIs(t, err, ErrPointNotFound)
}

func TestMappingsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveMapping(ctx, survey.APMapping{APName: "Router1", MacAddress: "AA:BB"}))
	require.NoError(t, s.SaveMapping(ctx, survey.APMapping{APName: "Router2", MacAddress: "CC:DD"}))

	mappings, err := s.Mappings(ctx)
	require.NoError(t, err)
	require.Len(t, mappings, 2)
	assert.Equal(t, "Router1", mappings[0].APName)
	assert.Equal(t, "CC:DD", mappings[1].MacAddress)
}

func TestJSONSnapshotRoundTrip(t *testing.T) {
	src := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := src.InsertPoint(ctx, storedPoint("a", base, false))
	require.NoError(t, err)
	_, err = src.InsertPoint(ctx, storedPoint("b", base.Add(time.Minute), true))
	require.NoError(t, err)
	require.NoError(t, src.SaveMapping(ctx, survey.APMapping{APName: "Router1", MacAddress: "AA:BB"}))

	var buf bytes.Buffer
	require.NoError(t, src.ExportJSON(ctx, &buf))

	dst := newTestStore(t)
	n, err := dst.ImportJSON(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	points, err := dst.Points(ctx)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "a", points[0].ID)
	assert.True(t, points[1].Disabled)

	mappings, err := dst.Mappings(ctx)
	require.NoError(t, err)
	require.Len(t, mappings, 1)
}
