package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/doroshv/wifi-heatmapper/internal/survey"
)

func closeWithError(cl interface{ Close() error }, err *error) {
	if cErr := cl.Close(); cErr != nil && *err == nil {
		*err = cErr
	}
}

// rollbackWithError is a no-op once the transaction has been committed.
func rollbackWithError(rb interface{ Rollback() error }, err *error) {
	if cErr := rb.Rollback(); cErr != nil && !errors.Is(cErr, sql.ErrTxDone) && *err == nil {
		*err = cErr
	}
}

func marshalIperf(r survey.IperfResults) (string, error) {
	p, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshaling iperf results: %w", err)
	}
	return string(p), nil
}

func unmarshalIperf(data string) (survey.IperfResults, error) {
	var r survey.IperfResults
	if data == "" {
		return r, nil
	}
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return r, fmt.Errorf("unmarshaling iperf results: %w", err)
	}
	return r, nil
}
