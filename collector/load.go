package collector

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	. "github.com/DGHeroin/SysInfo/SysInfo"
)

func (c *Collector) Load() (*LoadInfo, error) {
	if !c.procFS {
		return &LoadInfo{}, nil
	}
	data, err := os.ReadFile(c.procPath("loadavg"))
	if err != nil {
		return nil, fmt.Errorf("read loadavg: %w", err)
	}
	return ParseLoad(string(data))
}

// ParseLoad reads the 1, 5 and 15 minute averages from /proc/loadavg content.
func ParseLoad(data string) (*LoadInfo, error) {
	fields := strings.Fields(data)
	if len(fields) < 3 {
		return nil, fmt.Errorf("loadavg: %d fields: %w", len(fields), ErrMalformed)
	}
	var loads [3]float64
	for i := range loads {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("loadavg: %q: %w", fields[i], ErrMalformed)
		}
		loads[i] = v
	}
	return &LoadInfo{Load1: loads[0], Load5: loads[1], Load15: loads[2]}, nil
}
