package SysInfo

import (
	"strconv"
	"strings"
)

type PlatformInfo struct {
	Platform string `json:"platform"`
	System   string `json:"system"`
}

type UptimeInfo struct {
	Uptime  float64 `json:"uptime"`
	UpSince float64 `json:"upsince"`
}

type MemoryInfo struct {
	Total       string  `json:"total"`
	Avail       string  `json:"avail"`
	PercentUsed Percent `json:"percent_used"`
}

// Percent always encodes with a fractional part, so 75 goes out as 75.0.
type Percent float64

func (p Percent) MarshalJSON() ([]byte, error) {
	s := strconv.FormatFloat(float64(p), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}

type LoadInfo struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

type StorageInfo struct {
	TotalBytes  uint64 `json:"total_bytes"`
	UsedBytes   uint64 `json:"used_bytes"`
	AvailBytes  uint64 `json:"avail_bytes"`
	Total       string `json:"total"`
	Used        string `json:"used"`
	Avail       string `json:"avail"`
	PercentUsed int    `json:"percent_used"`
}

// Storage maps a mount name ("root", "var-log", ...) to its usage.
type Storage map[string]*StorageInfo

// Report is the response body. A nil field means the metric is disabled,
// so an enabled storage section with no existing mounts still encodes as {}.
// Field order is the order keys appear on the wire.
type Report struct {
	Platform *PlatformInfo `json:"platform,omitempty"`
	Uptime   *UptimeInfo   `json:"uptime,omitempty"`
	Memory   *MemoryInfo   `json:"memory,omitempty"`
	Load     *LoadInfo     `json:"load,omitempty"`
	Storage  *Storage      `json:"storage,omitempty"`
}
