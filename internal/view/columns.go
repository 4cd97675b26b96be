package view

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// Column describes how one field of a Row is presented in the table.
// Numeric columns sort by value; everything else sorts lexicographically.
// A non-hideable column always stays visible regardless of view state.
type Column struct {
	Key      string
	Title    string
	Numeric  bool
	Sortable bool
	Hideable bool
	Visible  bool // default visibility at view-state creation

	value func(*Row) any
}

// Columns is the full column registry in display order. The selection
// indicator is not a column: it is rendered by the host UI and participates
// in neither sorting nor hiding.
var Columns = []Column{
	{Key: "id", Title: "ID", Sortable: true, Hideable: true, Visible: false,
		value: func(r *Row) any { return r.ID }},
	{Key: "x", Title: "X", Numeric: true, Sortable: true, Hideable: true, Visible: false,
		value: func(r *Row) any { return r.X }},
	{Key: "y", Title: "Y", Numeric: true, Sortable: true, Hideable: true, Visible: false,
		value: func(r *Row) any { return r.Y }},
	{Key: "ssid", Title: "SSID", Sortable: true, Hideable: true, Visible: true,
		value: func(r *Row) any { return r.SSID }},
	{Key: "ap", Title: "Access Point", Sortable: true, Hideable: false, Visible: true,
		value: func(r *Row) any { return r.AP }},
	{Key: "rssi", Title: "RSSI [dBm]", Numeric: true, Sortable: true, Hideable: true, Visible: true,
		value: func(r *Row) any { return r.RSSI }},
	{Key: "quality", Title: "Quality [%]", Numeric: true, Sortable: true, Hideable: true, Visible: true,
		value: func(r *Row) any { return r.Quality }},
	{Key: "channel", Title: "Channel", Numeric: true, Sortable: true, Hideable: true, Visible: true,
		value: func(r *Row) any { return r.Channel }},
	{Key: "frequency", Title: "Frequency", Sortable: true, Hideable: true, Visible: true,
		value: func(r *Row) any { return r.Frequency }},
	{Key: "channelWidth", Title: "Width [MHz]", Numeric: true, Sortable: true, Hideable: true, Visible: false,
		value: func(r *Row) any { return r.ChannelWidth }},
	{Key: "txRate", Title: "TX Rate [Mbps]", Numeric: true, Sortable: true, Hideable: true, Visible: true,
		value: func(r *Row) any { return r.TxRate }},
	{Key: "phyMode", Title: "PHY Mode", Sortable: true, Hideable: true, Visible: false,
		value: func(r *Row) any { return r.PhyMode }},
	{Key: "security", Title: "Security", Sortable: true, Hideable: true, Visible: false,
		value: func(r *Row) any { return r.Security }},
	{Key: "tcpDownload", Title: "TCP Down [Mbps]", Numeric: true, Sortable: true, Hideable: true, Visible: true,
		value: func(r *Row) any { return r.TCPDownload }},
	{Key: "tcpUpload", Title: "TCP Up [Mbps]", Numeric: true, Sortable: true, Hideable: true, Visible: true,
		value: func(r *Row) any { return r.TCPUpload }},
	{Key: "udpDownload", Title: "UDP Down [Mbps]", Numeric: true, Sortable: true, Hideable: true, Visible: false,
		value: func(r *Row) any { return r.UDPDownload }},
	{Key: "udpUpload", Title: "UDP Up [Mbps]", Numeric: true, Sortable: true, Hideable: true, Visible: false,
		value: func(r *Row) any { return r.UDPUpload }},
	{Key: "timestamp", Title: "Timestamp", Sortable: true, Hideable: true, Visible: true,
		value: func(r *Row) any { return r.Timestamp }},
	{Key: "age", Title: "Age", Sortable: false, Hideable: true, Visible: false,
		value: func(r *Row) any { return humanize.Time(r.CapturedAt) }},
	{Key: "disabled", Title: "Disabled", Numeric: true, Sortable: true, Hideable: true, Visible: true,
		value: func(r *Row) any { return r.Disabled }},
}

// ColumnByKey returns the registry entry for key, or nil if unknown.
func ColumnByKey(key string) *Column {
	for i := range Columns {
		if Columns[i].Key == key {
			return &Columns[i]
		}
	}
	return nil
}

// CellString renders a row's value for one column as display text. The same
// text is what the free-text filter matches against.
func (c *Column) CellString(r *Row) string {
	switch v := c.value(r).(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return ""
	}
}

// Number returns the column's value as a float64 for numeric ordering.
// Non-numeric columns return 0.
func (c *Column) Number(r *Row) float64 {
	switch v := c.value(r).(type) {
	case int:
		return float64(v)
	case float64:
		return v
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return 0
	}
}
