package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/doroshv/wifi-heatmapper/internal/survey"
)

// Snapshot is the JSON database document used by the measurement tooling:
// one object holding the survey points and the access point mappings.
type Snapshot struct {
	SurveyPoints []survey.Point     `json:"surveyPoints"`
	APMappings   []survey.APMapping `json:"apMappings"`
}

// ImportJSON loads a snapshot document into the store. Points without an ID
// are assigned one. The whole import runs in a single transaction; on error
// nothing is imported. Returns the number of imported points.
func (s *SqliteStore) ImportJSON(ctx context.Context, r io.Reader) (n int, err error) {
	var snap Snapshot
	if err = json.NewDecoder(r).Decode(&snap); err != nil {
		return 0, fmt.Errorf("decoding snapshot: %w", err)
	}

	db, err := s.getWriteDB()
	if err != nil {
		return 0, fmt.Errorf("getting write connection: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollbackWithError(tx, &err)

	for _, p := range snap.SurveyPoints {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}

		var iperf string
		if iperf, err = marshalIperf(p.IperfResults); err != nil {
			return 0, err
		}

		if _, err = tx.ExecContext(
			ctx,
			insertPointSQL,
			p.ID,
			p.X,
			p.Y,
			p.WifiData.SSID,
			p.WifiData.BSSID,
			p.WifiData.RSSI,
			p.WifiData.Channel,
			p.WifiData.Security,
			p.WifiData.TxRate,
			p.WifiData.PhyMode,
			p.WifiData.ChannelWidth,
			p.WifiData.Frequency,
			iperf,
			p.Timestamp.UTC(),
			p.Disabled,
		); err != nil {
			return 0, fmt.Errorf("importing point %s: %w", p.ID, err)
		}
		n++
	}

	for _, m := range snap.APMappings {
		if _, err = tx.ExecContext(ctx, insertMappingSQL, m.APName, m.MacAddress); err != nil {
			return 0, fmt.Errorf("importing mapping %s: %w", m.MacAddress, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return n, nil
}

// ExportJSON writes the store contents as a snapshot document.
func (s *SqliteStore) ExportJSON(ctx context.Context, w io.Writer) error {
	points, err := s.Points(ctx)
	if err != nil {
		return err
	}

	mappings, err := s.Mappings(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(Snapshot{SurveyPoints: points, APMappings: mappings}); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}
