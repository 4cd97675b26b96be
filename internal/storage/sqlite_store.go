package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/doroshv/wifi-heatmapper/internal/survey"
)

// ErrPointNotFound is returned by UpdatePoint when no stored point has the
// given identifier.
var ErrPointNotFound = errors.New("survey point not found")

// SqliteStore handles database operations
type SqliteStore struct {
	dbPath string

	writeDB     *sql.DB
	writeDBOnce sync.Once
	writeDBErr  error

	readDB     *sql.DB
	readDBOnce sync.Once
	readDBErr  error

	closeOnce sync.Once
	closeErr  error
}

// NewSqliteStore creates a new database connection and initializes the
// schema using the Sqlite database
func NewSqliteStore(dbPath string) *SqliteStore {
	return &SqliteStore{dbPath: dbPath}
}

func runSQLCommand(db *sql.DB, sql string) error {
	_, err := db.Exec(sql)
	return err
}

func (s *SqliteStore) getWriteDB() (*sql.DB, error) {
	s.writeDBOnce.Do(func() {
		db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", s.dbPath, "_journal_mode=WAL&_synchronous=NORMAL"))
		if err != nil {
			s.writeDBErr = fmt.Errorf("opening write connection: %w", err)
			return
		}

		if err = runSQLCommand(db, schemaSQL); err != nil {
			_ = db.Close()
			s.writeDBErr = fmt.Errorf("initializing schema: %w", err)
			return
		}

		s.writeDB = db
	})

	return s.writeDB, s.writeDBErr
}

func (s *SqliteStore) getReadDB() (*sql.DB, error) {
	// The schema is created by the write connection; opening it first keeps
	// reads on a fresh database from failing on a missing file.
	if _, err := s.getWriteDB(); err != nil {
		return nil, err
	}

	s.readDBOnce.Do(func() {
		db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", s.dbPath, "mode=ro"))
		if err != nil {
			s.readDBErr = fmt.Errorf("opening read connection: %w", err)
			return
		}
		s.readDB = db
	})

	return s.readDB, s.readDBErr
}

func (s *SqliteStore) Points(ctx context.Context) (points []survey.Point, err error) {
	db, err := s.getReadDB()
	if err != nil {
		err = fmt.Errorf("getting read connection: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, selectPointsSQL)
	if err != nil {
		err = fmt.Errorf("querying points: %w", err)
		return
	}
	defer closeWithError(rows, &err)

	for rows.Next() {
		var p survey.Point
		var iperf string
		if err = rows.Scan(
			&p.ID,
			&p.X,
			&p.Y,
			&p.WifiData.SSID,
			&p.WifiData.BSSID,
			&p.WifiData.RSSI,
			&p.WifiData.Channel,
			&p.WifiData.Security,
			&p.WifiData.TxRate,
			&p.WifiData.PhyMode,
			&p.WifiData.ChannelWidth,
			&p.WifiData.Frequency,
			&iperf,
			&p.Timestamp,
			&p.Disabled,
		); err != nil {
			err = fmt.Errorf("scanning point: %w", err)
			return
		}
		if p.IperfResults, err = unmarshalIperf(iperf); err != nil {
			return
		}
		points = append(points, p)
	}
	err = rows.Err()
	return
}

func (s *SqliteStore) Mappings(ctx context.Context) (mappings []survey.APMapping, err error) {
	db, err := s.getReadDB()
	if err != nil {
		err = fmt.Errorf("getting read connection: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, selectMappingsSQL)
	if err != nil {
		err = fmt.Errorf("querying mappings: %w", err)
		return
	}
	defer closeWithError(rows, &err)

	for rows.Next() {
		var m survey.APMapping
		if err = rows.Scan(&m.APName, &m.MacAddress); err != nil {
			err = fmt.Errorf("scanning mapping: %w", err)
			return
		}
		mappings = append(mappings, m)
	}
	err = rows.Err()
	return
}

func (s *SqliteStore) InsertPoint(ctx context.Context, p survey.Point) (id string, err error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	iperf, err := marshalIperf(p.IperfResults)
	if err != nil {
		return "", err
	}

	db, err := s.getWriteDB()
	if err != nil {
		return "", fmt.Errorf("getting write connection: %w", err)
	}

	stmt, err := db.PrepareContext(ctx, insertPointSQL)
	if err != nil {
		return "", fmt.Errorf("preparing statement: %w", err)
	}
	defer closeWithError(stmt, &err)

	if _, err = stmt.ExecContext(
		ctx,
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
		return "", fmt.Errorf("inserting point: %w", err)
	}

	return p.ID, nil
}

func (s *SqliteStore) SaveMapping(ctx context.Context, m survey.APMapping) (err error) {
	db, err := s.getWriteDB()
	if err != nil {
		return fmt.Errorf("getting write connection: %w", err)
	}

	stmt, err := db.PrepareContext(ctx, insertMappingSQL)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer closeWithError(stmt, &err)

	if _, err = stmt.ExecContext(ctx, m.APName, m.MacAddress); err != nil {
		return fmt.Errorf("inserting mapping: %w", err)
	}
	return nil
}

// DeletePoints removes the given points in a single statement, so the batch
// either fully applies or fails as a whole.
func (s *SqliteStore) DeletePoints(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	db, err := s.getWriteDB()
	if err != nil {
		return fmt.Errorf("getting write connection: %w", err)
	}

	args := make([]any, 0, len(ids))

	var sb strings.Builder
	sb.WriteString("DELETE FROM points WHERE id IN (")
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("?")
		args = append(args, id)
	}
	sb.WriteString(")")

	if _, err = db.ExecContext(ctx, sb.String(), args...); err != nil {
		return fmt.Errorf("deleting points: %w", err)
	}
	return nil
}

// UpdatePoint applies the non-nil patch fields to one stored point.
func (s *SqliteStore) UpdatePoint(ctx context.Context, id string, patch survey.PointPatch) error {
	var assignments []string
	var args []any

	if patch.X != nil {
		assignments = append(assignments, "x = ?")
		args = append(args, *patch.X)
	}
	if patch.Y != nil {
		assignments = append(assignments, "y = ?")
		args = append(args, *patch.Y)
	}
	if patch.Disabled != nil {
		assignments = append(assignments, "disabled = ?")
		args = append(args, *patch.Disabled)
	}
	if len(assignments) == 0 {
		return nil
	}
	args = append(args, id)

	db, err := s.getWriteDB()
	if err != nil {
		return fmt.Errorf("getting write connection: %w", err)
	}

	query := fmt.Sprintf("UPDATE points SET %s WHERE id = ?", strings.Join(assignments, ", "))

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating point: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating point %s: %w", id, ErrPointNotFound)
	}
	return nil
}

func (s *SqliteStore) Close() error {
	s.closeOnce.Do(func() {
		var writeErr, readErr error

		if s.writeDB != nil {
			writeErr = s.writeDB.Close()
			s.writeDB = nil
		}

		if s.readDB != nil {
			readErr = s.readDB.Close()
			s.readDB = nil
		}

		switch {
		case writeErr != nil && readErr != nil:
			s.closeErr = errors.Join(writeErr, readErr)
		case writeErr != nil:
			s.closeErr = writeErr
		case readErr != nil:
			s.closeErr = readErr
		}
	})

	return s.closeErr
}
