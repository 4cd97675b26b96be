package storage

import (
	_ "embed"
)

const (
	insertPointSQL = `
INSERT INTO points (id,
                    x,
                    y,
                    ssid,
                    bssid,
                    rssi,
                    channel,
                    security,
                    tx_rate,
                    phy_mode,
                    channel_width,
                    frequency,
                    iperf_results,
                    timestamp,
                    disabled)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectPointsSQL = `
SELECT
    id,
    x,
    y,
    ssid,
    bssid,
    rssi,
    channel,
    security,
    tx_rate,
    phy_mode,
    channel_width,
    frequency,
    iperf_results,
    timestamp,
    disabled
FROM points
ORDER BY timestamp`

	insertMappingSQL = `
INSERT INTO ap_mappings (ap_name, mac_address)
VALUES (?, ?)`

	selectMappingsSQL = `
SELECT
    ap_name,
    mac_address
FROM ap_mappings
ORDER BY id`
)

//go:embed schema.sql
var schemaSQL string
