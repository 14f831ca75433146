package collector

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	. "github.com/DGHeroin/SysInfo/SysInfo"
)

func (c *Collector) Uptime() (*UptimeInfo, error) {
	now := c.now()
	if !c.procFS {
		return &UptimeInfo{Uptime: 0, UpSince: epochSeconds(now)}, nil
	}
	data, err := os.ReadFile(c.procPath("uptime"))
	if err != nil {
		return nil, fmt.Errorf("read uptime: %w", err)
	}
	return ParseUptime(string(data), now)
}

// ParseUptime reads the seconds since boot from the first field of
// /proc/uptime content.
func ParseUptime(data string, now time.Time) (*UptimeInfo, error) {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return nil, fmt.Errorf("uptime: empty: %w", ErrMalformed)
	}
	up, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, fmt.Errorf("uptime: %q: %w", fields[0], ErrMalformed)
	}
	return &UptimeInfo{
		Uptime:  up,
		UpSince: epochSeconds(now) - up,
	}, nil
}

func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
