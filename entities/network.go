package entities

type NetworkInterface struct {
	Name           string   `json:"name"`
	IsUp           bool     `json:"is_up"`
	IsRunning      bool     `json:"is_running"`
	RxBytes        uint64   `json:"rx_bytes"`
	TxBytes        uint64   `json:"tx_bytes"`
	RxPackets      uint64   `json:"rx_packets"`
	TxPackets      uint64   `json:"tx_packets"`
	RxErrors       uint64   `json:"rx_errors"`
	TxErrors       uint64   `json:"tx_errors"`
	RxDrops        uint64   `json:"rx_drops"`
	TxDrops        uint64   `json:"tx_drops"`
	SpeedMbps      *float64 `json:"speed_mbps,omitempty"`
	Ipv4Addresses  []string `json:"ipv4_addresses,omitempty"`
}

// BandwidthRate is the delta-over-wall-clock figure produced by NetworkMonitor.
type BandwidthRate struct {
	RxBytesPerSec float64 `json:"rx_bytes_per_sec"`
	TxBytesPerSec float64 `json:"tx_bytes_per_sec"`
}
